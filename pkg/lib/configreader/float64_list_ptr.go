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
)

type Float64ListPtrValidation struct {
	Required   bool
	Default    *[]float64
	AllowEmpty bool
	MinLength  int
	MaxLength  int
	Validator  func([]float64) ([]float64, error)
}

func Float64ListPtrFromStrMap(key string, sMap map[string]string, v *Float64ListPtrValidation) (*[]float64, error) {
	valStr, ok := sMap[key]
	if !ok {
		if v.Required {
			return nil, errors.Wrap(ErrorMustBeDefined(), key)
		}
		return v.Default, nil
	}
	if IsNone(valStr) {
		return nil, nil
	}

	val, err := Float64List(valStr, &Float64ListValidation{
		AllowEmpty: v.AllowEmpty,
		MinLength:  v.MinLength,
		MaxLength:  v.MaxLength,
		Validator:  v.Validator,
	})
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return &val, nil
}
