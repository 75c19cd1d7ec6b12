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

type IntListValidation struct {
	Required   bool
	Default    []int
	AllowEmpty bool
	MinLength  int
	MaxLength  int
	Validator  func([]int) ([]int, error)
}

func IntList(valStr string, v *IntListValidation) ([]int, error) {
	elems, err := ParseListLiteral(valStr)
	if err != nil {
		return nil, err
	}

	casted := make([]int, len(elems))
	for i, elem := range elems {
		item, err := strconv.Atoi(elem)
		if err != nil {
			return nil, errors.Wrap(ErrorInvalidPrimitiveType(elem, PrimTypeInt), s.Index(i))
		}
		casted[i] = item
	}
	return ValidateIntListProvided(casted, v)
}

func IntListFromStrMap(key string, sMap map[string]string, v *IntListValidation) ([]int, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateIntListMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := IntList(valStr, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateIntListMissing(v *IntListValidation) ([]int, error) {
	if v.Required {
		return nil, ErrorMustBeDefined()
	}
	return validateIntList(v.Default, v)
}

func ValidateIntListProvided(val []int, v *IntListValidation) ([]int, error) {
	return validateIntList(val, v)
}

func validateIntList(val []int, v *IntListValidation) ([]int, error) {
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

	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
