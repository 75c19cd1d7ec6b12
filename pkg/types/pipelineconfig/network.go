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

type NetworkConfig struct {
	NetType     NetType   `json:"net_type"`
	InChns      int       `json:"in_chns"`
	FeatureChns []int     `json:"feature_chns"`
	Dropout     []float64 `json:"dropout"`
	ClassNum    int       `json:"class_num"`
	Bilinear    bool      `json:"bilinear"`
}

func networkValidation() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true, // extras are collected and warned about, not fatal
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "NetType",
				StringValidation: &cr.StringValidation{
					Required:      true,
					AllowedValues: NetTypeStrings(),
				},
			},
			{
				StructField: "InChns",
				IntValidation: &cr.IntValidation{
					Default:              1,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "FeatureChns",
				IntListValidation: &cr.IntListValidation{
					Required:  true,
					MinLength: 1,
					Validator: validatePositiveInts,
				},
			},
			{
				StructField: "Dropout",
				Float64ListValidation: &cr.Float64ListValidation{
					Required:                 true,
					MinLength:                1,
					ElemGreaterThanOrEqualTo: pointer.Float64(0),
					ElemLessThanOrEqualTo:    pointer.Float64(1),
				},
			},
			{
				StructField: "ClassNum",
				IntValidation: &cr.IntValidation{
					Required:             true,
					GreaterThanOrEqualTo: pointer.Int(2),
				},
			},
			{
				StructField: "Bilinear",
				BoolValidation: &cr.BoolValidation{
					Default: true,
				},
			},
		},
	}
}

func (nc *NetworkConfig) read(strMap map[string]string) []error {
	if errs := cr.Struct(nc, strMap, networkValidation()); errs != nil {
		return errs
	}
	if err := nc.validate(); err != nil {
		return []error{err}
	}
	return nil
}

// feature_chns and dropout are parallel per-stage lists
func (nc *NetworkConfig) validate() error {
	if len(nc.FeatureChns) != len(nc.Dropout) {
		return ErrorStageCountMismatch(len(nc.FeatureChns), len(nc.Dropout))
	}
	return nil
}

// NumStages returns the depth of the encoder/decoder ladder
func (nc *NetworkConfig) NumStages() int {
	return len(nc.FeatureChns)
}

func validatePositiveInts(vals []int) ([]int, error) {
	for _, val := range vals {
		if val <= 0 {
			return nil, cr.ErrorMustBeGreaterThan(val, 0)
		}
	}
	return vals, nil
}
