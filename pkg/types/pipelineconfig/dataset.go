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
	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

type DatasetConfig struct {
	RootDir        string     `json:"root_dir"`
	TrainCSV       *string    `json:"train_csv"`
	ValidCSV       *string    `json:"valid_csv"`
	TestCSV        *string    `json:"test_csv"`
	ModalNum       int        `json:"modal_num"`
	TensorType     TensorType `json:"tensor_type"`
	TrainTransform []string   `json:"train_transform"`
	TestTransform  []string   `json:"test_transform"`

	// decoded parameter sub-namespaces of the listed transforms, keyed by
	// transform name
	TransformParams map[string]TransformParams `json:"-"`
}

func datasetValidation() *cr.StructValidation {
	return &cr.StructValidation{
		AllowExtraFields: true, // transform parameter keys share the section
		StructFieldValidations: []*cr.StructFieldValidation{
			{
				StructField: "RootDir",
				StringValidation: &cr.StringValidation{
					Required: true,
				},
			},
			{
				StructField:         "TrainCSV",
				StringPtrValidation: &cr.StringPtrValidation{},
			},
			{
				StructField:         "ValidCSV",
				StringPtrValidation: &cr.StringPtrValidation{},
			},
			{
				StructField:         "TestCSV",
				StringPtrValidation: &cr.StringPtrValidation{},
			},
			{
				StructField: "ModalNum",
				IntValidation: &cr.IntValidation{
					Default:              1,
					GreaterThanOrEqualTo: pointer.Int(1),
				},
			},
			{
				StructField: "TensorType",
				StringValidation: &cr.StringValidation{
					Default:       FloatTensorType.String(),
					AllowedValues: TensorTypeStrings(),
				},
			},
			{
				StructField: "TrainTransform",
				StringListValidation: &cr.StringListValidation{
					AllowEmpty:    true,
					AllowedValues: TransformNames(),
				},
			},
			{
				StructField: "TestTransform",
				StringListValidation: &cr.StringListValidation{
					AllowEmpty:    true,
					AllowedValues: TransformNames(),
				},
			},
		},
	}
}

func (dc *DatasetConfig) read(strMap map[string]string) []error {
	validation := datasetValidation()
	if errs := cr.Struct(dc, strMap, validation); errs != nil {
		return errs
	}
	return dc.readTransformParams(strMap)
}

// readTransformParams decodes the parameter sub-namespace of every transform
// listed in train_transform or test_transform
func (dc *DatasetConfig) readTransformParams(strMap map[string]string) []error {
	var allErrs []error
	dc.TransformParams = map[string]TransformParams{}

	names := slices.UniqueStrings(append(append([]string{}, dc.TrainTransform...), dc.TestTransform...))
	for _, name := range names {
		params, err := NewTransformParams(name)
		if err != nil {
			allErrs = append(allErrs, err)
			continue
		}

		if errs := cr.Struct(params, strMap, params.Validations()); errs != nil {
			allErrs = append(allErrs, errs...)
			continue
		}

		if err := params.Validate(); err != nil {
			allErrs = append(allErrs, errors.Wrap(err, name))
			continue
		}

		dc.TransformParams[name] = params
	}

	if errors.HasError(allErrs) {
		return allErrs
	}
	return nil
}

// unknownKeys reports the section keys claimed neither by the schema nor by
// any registered transform's parameter namespace
func (dc *DatasetConfig) unknownKeys(strMap map[string]string) []string {
	unknown := cr.UnknownKeys(dc, strMap, datasetValidation())
	return slices.SortStrs(slices.SubtractStrSlice(unknown, allTransformParamKeys()))
}

// Params returns the decoded parameters of a listed transform
func (dc *DatasetConfig) Params(transformName string) (TransformParams, bool) {
	params, ok := dc.TransformParams[transformName]
	return params, ok
}
