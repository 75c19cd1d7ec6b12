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

package pipelineconfig

import (
	cr "github.com/cortexlabs/medseg/pkg/lib/configreader"
	"github.com/cortexlabs/medseg/pkg/labelmap"
	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
)

type TestingConfig struct {
	DeviceName           string  `json:"device_name"`
	CheckpointName       string  `json:"checkpoint_name"`
	OutputDir            *string `json:"output_dir"`
	EvaluationMode       bool    `json:"evaluation_mode"`
	TestTimeDropout      bool    `json:"test_time_dropout"`
	MiniBatchSize        *int    `json:"mini_batch_size"`
	MiniPatchInputShape  *[]int  `json:"mini_patch_input_shape"`
	MiniPatchOutputShape *[]int  `json:"mini_patch_output_shape"`
	MiniPatchStride      *[]int  `json:"mini_patch_stride"`
	LabelSource          *[]int  `json:"label_source"`
	LabelTarget          *[]int  `json:"label_target"`
}

func testingValidation() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true, // extras are collected and warned about, not fatal
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "DeviceName",
				StringValidation: &cr.StringValidation{
					Default:   "cuda:0",
					Validator: validateDeviceName,
				},
			},
			{
				StructField: "CheckpointName",
				StringValidation: &cr.StringValidation{
					Required: true,
				},
			},
			{
				StructField:         "OutputDir",
				StringPtrValidation: &cr.StringPtrValidation{},
			},
			{
				StructField: "EvaluationMode",
				BoolValidation: &cr.BoolValidation{
					Default: true,
				},
			},
			{
				StructField:    "TestTimeDropout",
				BoolValidation: &cr.BoolValidation{},
			},
			{
				StructField: "MiniBatchSize",
				IntPtrValidation: &cr.IntPtrValidation{
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "MiniPatchInputShape",
				IntListPtrValidation: &cr.IntListPtrValidation{
					MinLength: 1,
					Validator: validatePositiveInts,
				},
			},
			{
				StructField: "MiniPatchOutputShape",
				IntListPtrValidation: &cr.IntListPtrValidation{
					MinLength: 1,
					Validator: validatePositiveInts,
				},
			},
			{
				StructField: "MiniPatchStride",
				IntListPtrValidation: &cr.IntListPtrValidation{
					MinLength: 1,
					Validator: validatePositiveInts,
				},
			},
			{
				StructField:          "LabelSource",
				IntListPtrValidation: &cr.IntListPtrValidation{},
			},
			{
				StructField:          "LabelTarget",
				IntListPtrValidation: &cr.IntListPtrValidation{},
			},
		},
	}
}

func (tc *TestingConfig) read(strMap map[string]string) []error {
	if errs := cr.Struct(tc, strMap, testingValidation()); errs != nil {
		return errs
	}
	if errs := tc.validate(); errs != nil {
		return errs
	}
	return nil
}

func (tc *TestingConfig) validate() []error {
	var allErrs []error

	allErrs, _ = errors.AddError(allErrs, tc.validatePatchShapes())

	if tc.LabelSource != nil || tc.LabelTarget != nil {
		_, err := tc.LabelMap()
		allErrs, _ = errors.AddError(allErrs, err, "label_source")
	}

	if errors.HasError(allErrs) {
		return allErrs
	}
	return nil
}

// The three mini-patch keys come as a set; ranks must match and the output
// window cannot exceed the input window on any axis
func (tc *TestingConfig) validatePatchShapes() error {
	if tc.MiniPatchInputShape == nil && tc.MiniPatchOutputShape == nil && tc.MiniPatchStride == nil {
		return nil
	}
	if tc.MiniPatchInputShape == nil || tc.MiniPatchOutputShape == nil || tc.MiniPatchStride == nil {
		return ErrorPatchShapesPartiallyDefined()
	}

	inputShape := *tc.MiniPatchInputShape
	outputShape := *tc.MiniPatchOutputShape
	stride := *tc.MiniPatchStride

	if len(outputShape) != len(inputShape) {
		return ErrorPatchShapeRankMismatch("mini_patch_input_shape", inputShape, "mini_patch_output_shape", outputShape)
	}
	if len(stride) != len(inputShape) {
		return ErrorPatchShapeRankMismatch("mini_patch_input_shape", inputShape, "mini_patch_stride", stride)
	}
	for i := range inputShape {
		if outputShape[i] > inputShape[i] {
			return ErrorPatchOutputExceedsInput(outputShape, inputShape)
		}
	}
	return nil
}

// UsesMiniPatch reports whether inference runs on tiled mini-patches rather
// than whole images
func (tc *TestingConfig) UsesMiniPatch() bool {
	return tc.MiniPatchInputShape != nil
}

// LabelMap returns the output label remapping table, or nil when no remapping
// is configured
func (tc *TestingConfig) LabelMap() (*labelmap.Table, error) {
	if tc.LabelSource == nil && tc.LabelTarget == nil {
		return nil, nil
	}
	var sources, targets []int
	if tc.LabelSource != nil {
		sources = *tc.LabelSource
	}
	if tc.LabelTarget != nil {
		targets = *tc.LabelTarget
	}
	return labelmap.New(sources, targets)
}
