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

package strings

import (
	"fmt"
	"strconv"
	"strings"
)

func Bool(val bool) string {
	return strconv.FormatBool(val)
}

func Float64(val float64) string {
	str := strconv.FormatFloat(val, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str = str + ".0"
	}
	return str
}

func Int(val int) string {
	return strconv.Itoa(val)
}

func Index(index int) string {
	return fmt.Sprintf("index %d", index)
}

// UserStr is used in error messages; strings are quoted so that type confusion
// (e.g. the string "None" vs the sentinel) is visible to the user
func UserStr(val interface{}) string {
	switch casted := val.(type) {
	case string:
		return fmt.Sprintf("%q", casted)
	case bool:
		return Bool(casted)
	case int:
		return Int(casted)
	case float64:
		return Float64(casted)
	case []string:
		return UserStrs(casted)
	case []int:
		strs := make([]string, len(casted))
		for i, item := range casted {
			strs[i] = Int(item)
		}
		return "[" + strings.Join(strs, ", ") + "]"
	case []float64:
		strs := make([]string, len(casted))
		for i, item := range casted {
			strs[i] = Float64(item)
		}
		return "[" + strings.Join(strs, ", ") + "]"
	case fmt.Stringer:
		return fmt.Sprintf("%q", casted.String())
	default:
		return fmt.Sprintf("%v", val)
	}
}

func UserStrs(vals []string) string {
	quoted := make([]string, len(vals))
	for i, val := range vals {
		quoted[i] = fmt.Sprintf("%q", val)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func StrsOr(strs []string) string {
	return joinWithLastSeparator(strs, "or")
}

func joinWithLastSeparator(strs []string, lastSeparator string) string {
	switch len(strs) {
	case 0:
		return ""
	case 1:
		return strs[0]
	case 2:
		return strs[0] + " " + lastSeparator + " " + strs[1]
	default:
		return strings.Join(strs[:len(strs)-1], ", ") + ", " + lastSeparator + " " + strs[len(strs)-1]
	}
}
