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
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
	"github.com/stretchr/testify/require"
)

type testSectionConfig struct {
	Name      string     `json:"name"`
	Count     int        `json:"count"`
	Rate      float64    `json:"rate"`
	Enabled   bool       `json:"enabled"`
	Shape     []int      `json:"shape"`
	Rates     []float64  `json:"rates"`
	Labels    []string   `json:"labels"`
	MaybeDir  *string    `json:"maybe_dir"`
	MaybeNum  *int       `json:"maybe_num"`
	MaybeList *[]int     `json:"maybe_list"`
	MaybeFlag *bool      `json:"maybe_flag"`
	MaybeFlts *[]float64 `json:"maybe_flts"`
}

func testSectionValidation() *StructValidation {
	return &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField:      "Name",
				StringValidation: &StringValidation{Required: true},
			},
			{
				StructField:   "Count",
				IntValidation: &IntValidation{Default: 3, GreaterThanOrEqualTo: pointer.Int(1)},
			},
			{
				StructField:       "Rate",
				Float64Validation: &Float64Validation{Default: 0.5},
			},
			{
				StructField:    "Enabled",
				BoolValidation: &BoolValidation{Default: true},
			},
			{
				StructField:       "Shape",
				IntListValidation: &IntListValidation{Required: true},
			},
			{
				StructField:           "Rates",
				Float64ListValidation: &Float64ListValidation{AllowEmpty: true},
			},
			{
				StructField:          "Labels",
				StringListValidation: &StringListValidation{AllowEmpty: true},
			},
			{
				StructField:         "MaybeDir",
				StringPtrValidation: &StringPtrValidation{},
			},
			{
				StructField:      "MaybeNum",
				IntPtrValidation: &IntPtrValidation{},
			},
			{
				StructField:          "MaybeList",
				IntListPtrValidation: &IntListPtrValidation{},
			},
			{
				StructField:       "MaybeFlag",
				BoolPtrValidation: &BoolPtrValidation{},
			},
			{
				StructField:              "MaybeFlts",
				Float64ListPtrValidation: &Float64ListPtrValidation{},
			},
		},
	}
}

func TestStruct(t *testing.T) {
	strMap := map[string]string{
		"name":       "unet",
		"count":      "4",
		"rate":       "1e-2",
		"enabled":    "False",
		"shape":      "[64, 64]",
		"rates":      "[0.5, 0.25]",
		"labels":     "[a, b]",
		"maybe_dir":  "model/unet",
		"maybe_num":  "10",
		"maybe_list": "[1, 2]",
		"maybe_flag": "True",
		"maybe_flts": "[0.1]",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Empty(t, errs)

	expected := &testSectionConfig{
		Name:      "unet",
		Count:     4,
		Rate:      0.01,
		Enabled:   false,
		Shape:     []int{64, 64},
		Rates:     []float64{0.5, 0.25},
		Labels:    []string{"a", "b"},
		MaybeDir:  pointer.String("model/unet"),
		MaybeNum:  pointer.Int(10),
		MaybeList: pointer.IntList(1, 2),
		MaybeFlag: pointer.Bool(true),
		MaybeFlts: pointer.Float64List(0.1),
	}
	require.Equal(t, expected, config)
}

func TestStructDefaults(t *testing.T) {
	strMap := map[string]string{
		"name":  "unet",
		"shape": "[8]",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Empty(t, errs)

	require.Equal(t, 3, config.Count)
	require.Equal(t, 0.5, config.Rate)
	require.True(t, config.Enabled)
	require.Nil(t, config.MaybeDir)
	require.Nil(t, config.MaybeList)
}

func TestStructNoneSentinel(t *testing.T) {
	strMap := map[string]string{
		"name":       "unet",
		"shape":      "[8]",
		"count":      "None", // value-typed: None falls back to the default
		"maybe_dir":  "None",
		"maybe_num":  "None",
		"maybe_list": "None",
		"maybe_flag": "None",
		"maybe_flts": "None",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Empty(t, errs)

	require.Equal(t, 3, config.Count)
	require.Nil(t, config.MaybeDir)
	require.Nil(t, config.MaybeNum)
	require.Nil(t, config.MaybeList)
	require.Nil(t, config.MaybeFlag)
	require.Nil(t, config.MaybeFlts)
}

func TestStructRequiredMissing(t *testing.T) {
	config := &testSectionConfig{}
	errs := Struct(config, map[string]string{"shape": "[8]"}, testSectionValidation())
	require.Len(t, errs, 1)
	require.Equal(t, ErrMustBeDefined, errors.GetKind(errs[0]))
	require.Contains(t, errs[0].Error(), "name")
}

func TestStructRequiredNone(t *testing.T) {
	// None on a required value-typed key is the same as the key being absent
	config := &testSectionConfig{}
	errs := Struct(config, map[string]string{"name": "None", "shape": "[8]"}, testSectionValidation())
	require.Len(t, errs, 1)
	require.Equal(t, ErrMustBeDefined, errors.GetKind(errs[0]))
}

func TestStructTypeMismatch(t *testing.T) {
	strMap := map[string]string{
		"name":  "unet",
		"shape": "[8]",
		"count": "four",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Len(t, errs, 1)
	require.Equal(t, ErrInvalidPrimitiveType, errors.GetKind(errs[0]))
	require.Contains(t, errs[0].Error(), "count")
}

func TestStructUnbalancedList(t *testing.T) {
	strMap := map[string]string{
		"name":  "unet",
		"shape": "[8, 16",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Len(t, errs, 1)
	require.Equal(t, ErrInvalidListLiteral, errors.GetKind(errs[0]))
	require.Contains(t, errs[0].Error(), "shape")
}

func TestStructExtraFields(t *testing.T) {
	strMap := map[string]string{
		"name":    "unet",
		"shape":   "[8]",
		"extra_b": "1",
		"extra_a": "2",
	}

	config := &testSectionConfig{}
	errs := Struct(config, strMap, testSectionValidation())
	require.Len(t, errs, 2)
	require.Equal(t, ErrUnsupportedKey, errors.GetKind(errs[0]))

	unknown := UnknownKeys(config, strMap, testSectionValidation())
	require.Equal(t, []string{"extra_a", "extra_b"}, unknown)
}

func TestStructAllowExtraFields(t *testing.T) {
	strMap := map[string]string{
		"name":  "unet",
		"shape": "[8]",
		"extra": "1",
	}

	v := testSectionValidation()
	v.AllowExtraFields = true

	config := &testSectionConfig{}
	errs := Struct(config, strMap, v)
	require.Empty(t, errs)
}

func TestStructShortCircuit(t *testing.T) {
	strMap := map[string]string{
		"count": "zero",
		"rate":  "fast",
	}

	v := testSectionValidation()
	v.ShortCircuit = true

	config := &testSectionConfig{}
	errs := Struct(config, strMap, v)
	require.Len(t, errs, 1)
}
