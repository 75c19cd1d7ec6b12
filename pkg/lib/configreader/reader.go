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
	"reflect"
	"strings"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

type StructFieldValidation struct {
	Key         string // defaults to the json tag or "StructField"
	StructField string // required

	// Provide one of the following:
	StringValidation         *StringValidation
	StringPtrValidation      *StringPtrValidation
	StringListValidation     *StringListValidation
	BoolValidation           *BoolValidation
	BoolPtrValidation        *BoolPtrValidation
	IntValidation            *IntValidation
	IntPtrValidation         *IntPtrValidation
	IntListValidation        *IntListValidation
	IntListPtrValidation     *IntListPtrValidation
	Float64Validation        *Float64Validation
	Float64PtrValidation     *Float64PtrValidation
	Float64ListValidation    *Float64ListValidation
	Float64ListPtrValidation *Float64ListPtrValidation
}

type StructValidation struct {
	StructFieldValidations []*StructFieldValidation
	AllowExtraFields       bool
	ShortCircuit           bool
}

// Struct reads and validates the fields of dest from a section's key=value
// pairs. dest must be a pointer to a struct.
func Struct(dest interface{}, strMap map[string]string, v *StructValidation) []error {
	var allowedKeys []string
	var allErrs []error

	for _, structFieldValidation := range v.StructFieldValidations {
		key := inferKey(reflect.TypeOf(dest), structFieldValidation.StructField, structFieldValidation.Key)
		allowedKeys = append(allowedKeys, key)

		var err error
		var val interface{}

		switch {
		case structFieldValidation.StringValidation != nil:
			val, err = StringFromStrMap(key, strMap, structFieldValidation.StringValidation)
		case structFieldValidation.StringPtrValidation != nil:
			val, err = StringPtrFromStrMap(key, strMap, structFieldValidation.StringPtrValidation)
		case structFieldValidation.StringListValidation != nil:
			val, err = StringListFromStrMap(key, strMap, structFieldValidation.StringListValidation)
		case structFieldValidation.BoolValidation != nil:
			val, err = BoolFromStrMap(key, strMap, structFieldValidation.BoolValidation)
		case structFieldValidation.BoolPtrValidation != nil:
			val, err = BoolPtrFromStrMap(key, strMap, structFieldValidation.BoolPtrValidation)
		case structFieldValidation.IntValidation != nil:
			val, err = IntFromStrMap(key, strMap, structFieldValidation.IntValidation)
		case structFieldValidation.IntPtrValidation != nil:
			val, err = IntPtrFromStrMap(key, strMap, structFieldValidation.IntPtrValidation)
		case structFieldValidation.IntListValidation != nil:
			val, err = IntListFromStrMap(key, strMap, structFieldValidation.IntListValidation)
		case structFieldValidation.IntListPtrValidation != nil:
			val, err = IntListPtrFromStrMap(key, strMap, structFieldValidation.IntListPtrValidation)
		case structFieldValidation.Float64Validation != nil:
			val, err = Float64FromStrMap(key, strMap, structFieldValidation.Float64Validation)
		case structFieldValidation.Float64PtrValidation != nil:
			val, err = Float64PtrFromStrMap(key, strMap, structFieldValidation.Float64PtrValidation)
		case structFieldValidation.Float64ListValidation != nil:
			val, err = Float64ListFromStrMap(key, strMap, structFieldValidation.Float64ListValidation)
		case structFieldValidation.Float64ListPtrValidation != nil:
			val, err = Float64ListPtrFromStrMap(key, strMap, structFieldValidation.Float64ListPtrValidation)
		default:
			err = ErrorUnsupportedFieldValidation()
		}

		var ok bool
		if allErrs, ok = errors.AddError(allErrs, err); ok {
			if v.ShortCircuit {
				return allErrs
			}
			continue
		}

		err = setField(val, dest, structFieldValidation.StructField)
		if allErrs, ok = errors.AddError(allErrs, err, key); ok {
			if v.ShortCircuit {
				return allErrs
			}
		}
	}

	if !v.AllowExtraFields {
		for _, extraKey := range extraKeys(strMap, allowedKeys) {
			allErrs = append(allErrs, ErrorUnsupportedKey(extraKey))
		}
	}

	if errors.HasError(allErrs) {
		return allErrs
	}
	return nil
}

// UnknownKeys returns the keys of strMap not claimed by the validation table,
// for consumers that tolerate (but report) extra keys
func UnknownKeys(destType interface{}, strMap map[string]string, v *StructValidation) []string {
	return extraKeys(strMap, AllowedKeys(destType, v))
}

// AllowedKeys returns the keys claimed by the validation table
func AllowedKeys(destType interface{}, v *StructValidation) []string {
	var allowedKeys []string
	for _, structFieldValidation := range v.StructFieldValidations {
		allowedKeys = append(allowedKeys, inferKey(reflect.TypeOf(destType), structFieldValidation.StructField, structFieldValidation.Key))
	}
	return allowedKeys
}

func extraKeys(strMap map[string]string, allowedKeys []string) []string {
	var keys []string
	for key := range strMap {
		keys = append(keys, key)
	}
	extras := slices.SubtractStrSlice(keys, allowedKeys)
	return slices.SortStrs(extras)
}

// destStruct must be a pointer to a struct
func setField(val interface{}, destStruct interface{}, fieldName string) error {
	v := reflect.ValueOf(destStruct).Elem().FieldByName(fieldName)
	if !v.IsValid() || !v.CanSet() {
		return errors.Wrap(ErrorCannotSetStructField(), fieldName)
	}

	if val == nil {
		switch v.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		return errors.Wrap(ErrorCannotSetStructField(), fieldName)
	}

	valValue := reflect.ValueOf(val)
	if !valValue.Type().AssignableTo(v.Type()) {
		if valValue.Type().ConvertibleTo(v.Type()) {
			v.Set(valValue.Convert(v.Type()))
			return nil
		}
		return errors.Wrap(ErrorCannotSetStructField(), fieldName)
	}

	v.Set(valValue)
	return nil
}

func inferKey(structType reflect.Type, typeStructField string, typeKey string) string {
	if typeKey != "" {
		return typeKey
	}
	field, _ := structType.Elem().FieldByName(typeStructField)
	if tag, ok := field.Tag.Lookup("json"); ok {
		return strings.Split(tag, ",")[0]
	}
	return typeStructField
}
