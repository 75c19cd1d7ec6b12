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
	"sort"

	cr "github.com/cortexlabs/medseg/pkg/lib/configreader"
	"github.com/cortexlabs/medseg/pkg/labelmap"
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
)

const (
	ChannelWiseGammaCorrectionTransform = "ChannelWiseGammaCorrection"
	ChannelWiseNormalizeTransform       = "ChannelWiseNormalize"
	LabelConvertTransform               = "LabelConvert"
	CropWithBoundingBoxTransform        = "CropWithBoundingBox"
	RandomCropTransform                 = "RandomCrop"
	LabelToProbabilityTransform         = "LabelToProbability"
)

// TransformParams holds the decoded parameter sub-namespace of one transform.
// Parameter keys are flat dataset-section keys named <TransformName>_<param>.
type TransformParams interface {
	TransformName() string
	Validations() *cr.StructValidation
	Validate() error
}

var _transformRegistry = map[string]func() TransformParams{
	ChannelWiseGammaCorrectionTransform: func() TransformParams { return &ChannelWiseGammaCorrectionParams{} },
	ChannelWiseNormalizeTransform:       func() TransformParams { return &ChannelWiseNormalizeParams{} },
	LabelConvertTransform:               func() TransformParams { return &LabelConvertParams{} },
	CropWithBoundingBoxTransform:        func() TransformParams { return &CropWithBoundingBoxParams{} },
	RandomCropTransform:                 func() TransformParams { return &RandomCropParams{} },
	LabelToProbabilityTransform:         func() TransformParams { return &LabelToProbabilityParams{} },
}

func TransformNames() []string {
	names := make([]string, 0, len(_transformRegistry))
	for name := range _transformRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewTransformParams(name string) (TransformParams, error) {
	newParams, ok := _transformRegistry[name]
	if !ok {
		return nil, ErrorUnknownTransform(name, TransformNames())
	}
	return newParams(), nil
}

func allTransformParamKeys() []string {
	var keys []string
	for _, newParams := range _transformRegistry {
		params := newParams()
		keys = append(keys, cr.AllowedKeys(params, params.Validations())...)
	}
	return keys
}

type ChannelWiseGammaCorrectionParams struct {
	GammaMin float64 `json:"ChannelWiseGammaCorrection_gamma_min"`
	GammaMax float64 `json:"ChannelWiseGammaCorrection_gamma_max"`
}

func (params *ChannelWiseGammaCorrectionParams) TransformName() string {
	return ChannelWiseGammaCorrectionTransform
}

func (params *ChannelWiseGammaCorrectionParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "GammaMin",
				Float64Validation: &cr.Float64Validation{
					Required:    true,
					GreaterThan: pointer.Float64(0),
				},
			},
			{
				StructField: "GammaMax",
				Float64Validation: &cr.Float64Validation{
					Required:    true,
					GreaterThan: pointer.Float64(0),
				},
			},
		},
	}
}

func (params *ChannelWiseGammaCorrectionParams) Validate() error {
	if params.GammaMin > params.GammaMax {
		return ErrorMinGreaterThanMax("gamma_min", params.GammaMin, "gamma_max", params.GammaMax)
	}
	return nil
}

type ChannelWiseNormalizeParams struct {
	Mean         *[]float64 `json:"ChannelWiseNormalize_mean"`
	Std          *[]float64 `json:"ChannelWiseNormalize_std"`
	ZeroToRandom bool       `json:"ChannelWiseNormalize_zero_to_random"`
}

func (params *ChannelWiseNormalizeParams) TransformName() string {
	return ChannelWiseNormalizeTransform
}

func (params *ChannelWiseNormalizeParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField:              "Mean",
				Float64ListPtrValidation: &cr.Float64ListPtrValidation{},
			},
			{
				StructField:              "Std",
				Float64ListPtrValidation: &cr.Float64ListPtrValidation{},
			},
			{
				StructField:    "ZeroToRandom",
				BoolValidation: &cr.BoolValidation{},
			},
		},
	}
}

// A nil mean or std means the statistics are computed from the image itself
func (params *ChannelWiseNormalizeParams) Validate() error {
	if params.Mean != nil && params.Std != nil && len(*params.Mean) != len(*params.Std) {
		return ErrorNormalizeStatsLenMismatch(len(*params.Mean), len(*params.Std))
	}
	return nil
}

type LabelConvertParams struct {
	SourceList []int `json:"LabelConvert_source_list"`
	TargetList []int `json:"LabelConvert_target_list"`
}

func (params *LabelConvertParams) TransformName() string {
	return LabelConvertTransform
}

func (params *LabelConvertParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "SourceList",
				IntListValidation: &cr.IntListValidation{
					Required:  true,
					MinLength: 1,
				},
			},
			{
				StructField: "TargetList",
				IntListValidation: &cr.IntListValidation{
					Required:  true,
					MinLength: 1,
				},
			},
		},
	}
}

func (params *LabelConvertParams) Validate() error {
	_, err := params.LabelMap()
	return err
}

func (params *LabelConvertParams) LabelMap() (*labelmap.Table, error) {
	return labelmap.New(params.SourceList, params.TargetList)
}

type CropWithBoundingBoxParams struct {
	Start      *[]int `json:"CropWithBoundingBox_start"`
	OutputSize *[]int `json:"CropWithBoundingBox_output_size"`
}

func (params *CropWithBoundingBoxParams) TransformName() string {
	return CropWithBoundingBoxTransform
}

func (params *CropWithBoundingBoxParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField:          "Start",
				IntListPtrValidation: &cr.IntListPtrValidation{},
			},
			{
				StructField:          "OutputSize",
				IntListPtrValidation: &cr.IntListPtrValidation{},
			},
		},
	}
}

// A nil start centers the window on the foreground bounding box; a nil output
// size takes the bounding box extent
func (params *CropWithBoundingBoxParams) Validate() error {
	if params.Start != nil && params.OutputSize != nil && len(*params.Start) != len(*params.OutputSize) {
		return ErrorPatchShapeRankMismatch("start", *params.Start, "output_size", *params.OutputSize)
	}
	return nil
}

type RandomCropParams struct {
	OutputSize      []int   `json:"RandomCrop_output_size"`
	ForegroundFocus bool    `json:"RandomCrop_foreground_focus"`
	ForegroundRatio float64 `json:"RandomCrop_foreground_ratio"`
	MaskLabel       *[]int  `json:"RandomCrop_mask_label"`
}

func (params *RandomCropParams) TransformName() string {
	return RandomCropTransform
}

func (params *RandomCropParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "OutputSize",
				IntListValidation: &cr.IntListValidation{
					Required:  true,
					MinLength: 1,
				},
			},
			{
				StructField:    "ForegroundFocus",
				BoolValidation: &cr.BoolValidation{},
			},
			{
				StructField: "ForegroundRatio",
				Float64Validation: &cr.Float64Validation{
					Default:              0.5,
					GreaterThanOrEqualTo: pointer.Float64(0),
					LessThanOrEqualTo:    pointer.Float64(1),
				},
			},
			{
				StructField:          "MaskLabel",
				IntListPtrValidation: &cr.IntListPtrValidation{},
			},
		},
	}
}

func (params *RandomCropParams) Validate() error {
	return nil
}

type LabelToProbabilityParams struct {
	ClassNum int `json:"LabelToProbability_class_num"`
}

func (params *LabelToProbabilityParams) TransformName() string {
	return LabelToProbabilityTransform
}

func (params *LabelToProbabilityParams) Validations() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true,
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "ClassNum",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(2),
				},
			},
		},
	}
}

func (params *LabelToProbabilityParams) Validate() error {
	return nil
}
