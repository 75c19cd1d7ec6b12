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

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

type Float64ListValidation struct {
	Required                 bool
	Default                  []float64
	AllowEmpty               bool
	MinLength                int
	MaxLength                int
	ElemGreaterThanOrEqualTo *float64
	ElemLessThanOrEqualTo    *float64
	Validator                func([]float64) ([]float64, error)
}

func Float64List(valStr string, v *Float64ListValidation) ([]float64, error) {
	elems, err := ParseListLiteral(valStr)
	if err != nil {
		return nil, err
	}

	casted := make([]float64, len(elems))
	for i, elem := range elems {
		item, err := strconv.ParseFloat(elem, 64)
		if err != nil {
			return nil, errors.Wrap(ErrorInvalidPrimitiveType(elem, PrimTypeFloat), s.Index(i))
		}
		casted[i] = item
	}
	return ValidateFloat64ListProvided(casted, v)
}

func Float64ListFromStrMap(key string, sMap map[string]string, v *Float64ListValidation) ([]float64, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateFloat64ListMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Float64List(valStr, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateFloat64ListMissing(v *Float64ListValidation) ([]float64, error) {
	if v.Required {
		return nil, ErrorMustBeDefined()
	}
	return validateFloat64List(v.Default, v)
}

func ValidateFloat64ListProvided(val []float64, v *Float64ListValidation) ([]float64, error) {
	return validateFloat64List(val, v)
}

func validateFloat64List(val []float64, v *Float64ListValidation) ([]float64, error) {
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

	for i, elem := range val {
		if v.ElemGreaterThanOrEqualTo != nil && elem < *v.ElemGreaterThanOrEqualTo {
			return nil, errors.Wrap(ErrorMustBeGreaterThanOrEqualTo(elem, *v.ElemGreaterThanOrEqualTo), s.Index(i))
		}
		if v.ElemLessThanOrEqualTo != nil && elem > *v.ElemLessThanOrEqualTo {
			return nil, errors.Wrap(ErrorMustBeLessThanOrEqualTo(elem, *v.ElemLessThanOrEqualTo), s.Index(i))
		}
	}

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
