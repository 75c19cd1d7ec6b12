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
	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

type StringListValidation struct {
	Required      bool
	Default       []string
	AllowEmpty    bool
	AllowedValues []string
	DisallowDups  bool
	MinLength     int
	MaxLength     int
	Validator     func([]string) ([]string, error)
}

func StringList(valStr string, v *StringListValidation) ([]string, error) {
	elems, err := ParseListLiteral(valStr)
	if err != nil {
		return nil, err
	}
	return ValidateStringListProvided(elems, v)
}

func StringListFromStrMap(key string, sMap map[string]string, v *StringListValidation) ([]string, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateStringListMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := StringList(valStr, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateStringListMissing(v *StringListValidation) ([]string, error) {
	if v.Required {
		return nil, ErrorMustBeDefined()
	}
	return validateStringList(v.Default, v)
}

func ValidateStringListProvided(val []string, v *StringListValidation) ([]string, error) {
	return validateStringList(val, v)
}

func validateStringList(val []string, v *StringListValidation) ([]string, error) {
	if !v.AllowEmpty {
		if val != nil && len(val) == 0 {
			return nil, ErrorCannotBeEmpty()
		}
	}

	if v.MinLength != 0 {
		if len(val) < v.MinLength {
			return nil, ErrorTooFewElements(v.MinLength)
		}
	}

	if v.MaxLength != 0 {
		if len(val) > v.MaxLength {
			return nil, ErrorTooManyElements(v.MaxLength)
		}
	}

	if v.AllowedValues != nil {
		for i, elem := range val {
			if !slices.HasString(v.AllowedValues, elem) {
				return nil, errors.Wrap(ErrorInvalidStr(elem, v.AllowedValues), s.Index(i))
			}
		}
	}

	if v.DisallowDups {
		if dup, ok := findDuplicateStr(val); ok {
			return nil, ErrorDuplicatedValue(dup)
		}
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}

func findDuplicateStr(strs []string) (string, bool) {
	seen := map[string]bool{}
	for _, str := range strs {
		if seen[str] {
			return str, true
		}
		seen[str] = true
	}
	return "", false
}
