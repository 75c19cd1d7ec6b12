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
)

type Float64Validation struct {
	Required             bool
	Default              float64
	GreaterThan          *float64
	GreaterThanOrEqualTo *float64
	LessThan             *float64
	LessThanOrEqualTo    *float64
	Validator            func(float64) (float64, error)
}

// Float64 accepts integer and scientific notation literals (e.g. 1e-4)
func Float64(valStr string, v *Float64Validation) (float64, error) {
	casted, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
	if err != nil {
		return 0, ErrorInvalidPrimitiveType(valStr, PrimTypeFloat)
	}
	return ValidateFloat64(casted, v)
}

func Float64FromStrMap(key string, sMap map[string]string, v *Float64Validation) (float64, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateFloat64Missing(v)
		if err != nil {
			return 0, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Float64(valStr, v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateFloat64Missing(v *Float64Validation) (float64, error) {
	if v.Required {
		return 0, ErrorMustBeDefined()
	}
	return ValidateFloat64(v.Default, v)
}

func ValidateFloat64(val float64, v *Float64Validation) (float64, error) {
	if err := ValidateFloat64Val(val, v); err != nil {
		return 0, err
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}

func ValidateFloat64Val(val float64, v *Float64Validation) error {
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
