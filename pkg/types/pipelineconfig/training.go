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
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
)

type TrainingConfig struct {
	DeviceName       string        `json:"device_name"`
	BatchSize        int           `json:"batch_size"`
	LossType         LossType      `json:"loss_type"`
	LossSoftmax      *bool         `json:"loss_softmax"`
	Optimizer        OptimizerType `json:"optimizer"`
	LearningRate     float64       `json:"learning_rate"`
	Momentum         float64       `json:"momentum"`
	WeightDecay      float64       `json:"weight_decay"`
	LRMilestones     []int         `json:"lr_milestones"`
	LRGamma          float64       `json:"lr_gamma"`
	CheckpointPrefix string        `json:"checkpoint_prefix"`
	SummaryDir       *string       `json:"summary_dir"`
	IterStart        int           `json:"iter_start"`
	IterMax          int           `json:"iter_max"`
	IterValid        int           `json:"iter_valid"`
	IterSave         int           `json:"iter_save"`
}

func trainingValidation() *cr.StructValidation {
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
				StructField: "BatchSize",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "LossType",
				StringValidation: &cr.StringValidation{
					Default:       CrossEntropyLossType.String(),
					AllowedValues: LossTypeStrings(),
				},
			},
			{
				StructField:       "LossSoftmax",
				BoolPtrValidation: &cr.BoolPtrValidation{},
			},
			{
				StructField: "Optimizer",
				StringValidation: &cr.StringValidation{
					Default:       SGDOptimizerType.String(),
					AllowedValues: OptimizerTypeStrings(),
				},
			},
			{
				StructField: "LearningRate",
				Float64Validation: &cr.Float64Validation{
					Required:    true,
					GreaterThan: pointer.Float64(0),
				},
			},
			{
				StructField: "Momentum",
				Float64Validation: &cr.Float64Validation{
					Default:              0.9,
					GreaterThanOrEqualTo: pointer.Float64(0),
					LessThan:             pointer.Float64(1),
				},
			},
			{
				StructField: "WeightDecay",
				Float64Validation: &cr.Float64Validation{
					GreaterThanOrEqualTo: pointer.Float64(0),
				},
			},
			{
				StructField: "LRMilestones",
				IntListValidation: &cr.IntListValidation{
					AllowEmpty: true,
					Validator:  validateMilestones,
				},
			},
			{
				StructField: "LRGamma",
				Float64Validation: &cr.Float64Validation{
					Default:           0.5,
					GreaterThan:       pointer.Float64(0),
					LessThanOrEqualTo: pointer.Float64(1),
				},
			},
			{
				StructField: "CheckpointPrefix",
				StringValidation: &cr.StringValidation{
					Required: true,
				},
			},
			{
				StructField:         "SummaryDir",
				StringPtrValidation: &cr.StringPtrValidation{},
			},
			{
				StructField: "IterStart",
				IntValidation: &cr.IntValidation{
					GreaterThanOrEqualTo: pointer.Int(0),
				},
			},
			{
				StructField: "IterMax",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "IterValid",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "IterSave",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
		},
	}
}

func (tc *TrainingConfig) read(strMap map[string]string) []error {
	if errs := cr.Struct(tc, strMap, trainingValidation()); errs != nil {
		return errs
	}
	if err := tc.validate(); err != nil {
		return []error{err}
	}
	return nil
}

func (tc *TrainingConfig) validate() error {
	if tc.IterStart > tc.IterMax {
		return ErrorIterStartGreaterThanMax(tc.IterStart, tc.IterMax)
	}
	return nil
}

func validateMilestones(milestones []int) ([]int, error) {
	for i, milestone := range milestones {
		if milestone <= 0 || (i > 0 && milestone <= milestones[i-1]) {
			return nil, ErrorMilestonesNotIncreasing(milestones)
		}
	}
	return milestones, nil
}
