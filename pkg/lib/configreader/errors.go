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
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

const (
	ErrParseConfig                = "configreader.parse_config"
	ErrSectionMustBeDefined       = "configreader.section_must_be_defined"
	ErrUnsupportedFieldValidation = "configreader.unsupported_field_validation"
	ErrUnsupportedKey             = "configreader.unsupported_key"
	ErrInvalidPrimitiveType       = "configreader.invalid_primitive_type"
	ErrInvalidListLiteral         = "configreader.invalid_list_literal"
	ErrInvalidStr                 = "configreader.invalid_str"
	ErrInvalidInt                 = "configreader.invalid_int"
	ErrMustBeDefined              = "configreader.must_be_defined"
	ErrCannotBeEmpty              = "configreader.cannot_be_empty"
	ErrMustHavePrefix             = "configreader.must_have_prefix"
	ErrMustBeLessThan             = "configreader.must_be_less_than"
	ErrMustBeLessThanOrEqualTo    = "configreader.must_be_less_than_or_equal_to"
	ErrMustBeGreaterThan          = "configreader.must_be_greater_than"
	ErrMustBeGreaterThanOrEqualTo = "configreader.must_be_greater_than_or_equal_to"
	ErrTooFewElements             = "configreader.too_few_elements"
	ErrTooManyElements            = "configreader.too_many_elements"
	ErrDuplicatedValue            = "configreader.duplicated_value"
	ErrCannotSetStructField       = "configreader.cannot_set_struct_field"
)

func ErrorParseConfig(filePath string, cause error) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrParseConfig,
		Message: fmt.Sprintf("%s: unable to parse config file: %s", filePath, errors.CauseOrSelf(cause).Error()),
		Cause:   cause,
	})
}

func ErrorSectionMustBeDefined(sectionName string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrSectionMustBeDefined,
		Message: fmt.Sprintf("section [%s] must be defined", sectionName),
	})
}

func ErrorUnsupportedFieldValidation() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedFieldValidation,
		Message: "undefined or unsupported field validation",
	})
}

func ErrorUnsupportedKey(key string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedKey,
		Message: fmt.Sprintf("key %s is not supported", s.UserStr(key)),
	})
}

func ErrorInvalidPrimitiveType(provided string, allowedType PrimitiveType, allowedTypes ...PrimitiveType) error {
	allAllowedTypes := append(PrimitiveTypes{allowedType}, allowedTypes...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidPrimitiveType,
		Message: fmt.Sprintf("%s: invalid type (expected %s)", s.UserStr(provided), s.StrsOr(allAllowedTypes.StringList())),
	})
}

func ErrorInvalidListLiteral(provided string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidListLiteral,
		Message: fmt.Sprintf("%s: invalid list literal (lists are comma-separated values wrapped in balanced square brackets, e.g. [0, 255])", s.UserStr(provided)),
	})
}

func ErrorInvalidStr(provided string, allowedVals []string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidStr,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.StrsOr(userStrs(allowedVals))),
	})
}

func ErrorInvalidInt(provided int, allowedVals []int) error {
	strs := make([]string, len(allowedVals))
	for i, val := range allowedVals {
		strs[i] = s.Int(val)
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidInt,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.StrsOr(strs)),
	})
}

func ErrorMustBeDefined() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeDefined,
		Message: "must be defined",
	})
}

func ErrorCannotBeEmpty() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeEmpty,
		Message: "cannot be empty",
	})
}

func ErrorMustHavePrefix(provided string, prefix string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustHavePrefix,
		Message: fmt.Sprintf("%s must start with %s", s.UserStr(provided), s.UserStr(prefix)),
	})
}

func ErrorMustBeLessThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThan,
		Message: fmt.Sprintf("%s must be less than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeLessThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThanOrEqualTo,
		Message: fmt.Sprintf("%s must be less than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThan,
		Message: fmt.Sprintf("%s must be greater than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThanOrEqualTo,
		Message: fmt.Sprintf("%s must be greater than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorTooFewElements(minLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooFewElements,
		Message: fmt.Sprintf("must contain at least %d elements", minLength),
	})
}

func ErrorTooManyElements(maxLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooManyElements,
		Message: fmt.Sprintf("must contain at most %d elements", maxLength),
	})
}

func ErrorDuplicatedValue(val interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDuplicatedValue,
		Message: fmt.Sprintf("%s is duplicated", s.UserStr(val)),
	})
}

func ErrorCannotSetStructField() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotSetStructField,
		Message: "unable to set struct field",
	})
}

func userStrs(vals []string) []string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = s.UserStr(val)
	}
	return strs
}
