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

type BoolValidation struct {
	Required bool
	Default  bool
}

// Booleans are the Python literals True and False, case-sensitively
func Bool(valStr string, v *BoolValidation) (bool, error) {
	switch valStr {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	return false, ErrorInvalidPrimitiveType(valStr, PrimTypeBool)
}

func BoolFromStrMap(key string, sMap map[string]string, v *BoolValidation) (bool, error) {
	valStr, ok := sMap[key]
	if !ok || IsNone(valStr) {
		val, err := ValidateBoolMissing(v)
		if err != nil {
			return false, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Bool(valStr, v)
	if err != nil {
		return false, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateBoolMissing(v *BoolValidation) (bool, error) {
	if v.Required {
		return false, ErrorMustBeDefined()
	}
	return v.Default, nil
}
