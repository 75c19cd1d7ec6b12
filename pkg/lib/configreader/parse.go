/*
Copyright 2022 Cortex Labs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package configreader

import (
	"strings"
)

// NoneValue is the sentinel for "use the consumer's default"; it is a valid
// value for any key and never an error on its own
const NoneValue = "None"

func IsNone(valStr string) bool {
	return strings.TrimSpace(valStr) == NoneValue
}

// ParseListLiteral splits a bracketed list literal into its raw elements,
// preserving element order. The empty list literal [] yields an empty slice.
func ParseListLiteral(valStr string) ([]string, error) {
	trimmed := strings.TrimSpace(valStr)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, ErrorInvalidListLiteral(valStr)
	}
	if strings.Count(trimmed, "[") != 1 || strings.Count(trimmed, "]") != 1 {
		return nil, ErrorInvalidListLiteral(valStr)
	}

	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return []string{}, nil
	}

	items := strings.Split(inner, ",")
	elems := make([]string, len(items))
	for i, item := range items {
		elem := strings.TrimSpace(item)
		if elem == "" {
			return nil, ErrorInvalidListLiteral(valStr)
		}
		elems[i] = elem
	}
	return elems, nil
}
