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
	"strconv"
	"strings"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

type IntValidation struct {
	Required             bool
	Default              int
	AllowedValues        []int
	GreaterThan          *int
	GreaterThanOrEqualTo *int
	LessThan             *int
	LessThanOrEqualTo    *int
	Validator            func(int) (int, error)
}

func Int(valStr string, v *IntValidation) (int, error) {
	casted, err := strconv.Atoi(strings.TrimSpace(valStr))
	if err != nil {
		return 0, ErrorInvalidPrimitiveType(valStr, PrimTypeInt)
	}
	return ValidateInt(casted, v)
}

func IntFromStrMap(key string, sMap map[string]string, v *IntValidation) (int, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateIntMissing(v)
		if err != nil {
			return 0, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Int(valStr, v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateIntMissing(v *IntValidation) (int, error) {
	if v.Required {
		return 0, ErrorMustBeDefined()
	}
	return ValidateInt(v.Default, v)
}

func ValidateInt(val int, v *IntValidation) (int, error) {
	if err := ValidateIntVal(val, v); err != nil {
		return 0, err
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}

func ValidateIntVal(val int, v *IntValidation) error {
	if v.AllowedValues != nil {
		if !slices.HasInt(v.AllowedValues, val) {
			return ErrorInvalidInt(val, v.AllowedValues)
		}
	}
	if v.GreaterThan != nil && val <= *v.GreaterThan {
		return ErrorMustBeGreaterThan(val, *v.GreaterThan)
	}
	if v.GreaterThanOrEqualTo != nil && val < *v.GreaterThanOrEqualTo {
		return ErrorMustBeGreaterThanOrEqualTo(val, *v.GreaterThanOrEqualTo)
	}
	if v.LessThan != nil && val >= *v.LessThan {
		return ErrorMustBeLessThan(val, *v.LessThan)
	}
	if v.LessThanOrEqualTo != nil && val > *v.LessThanOrEqualTo {
		return ErrorMustBeLessThanOrEqualTo(val, *v.LessThanOrEqualTo)
	}
	return nil
}
