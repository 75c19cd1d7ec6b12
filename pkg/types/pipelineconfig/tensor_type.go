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

type TensorType string

const (
	UnknownTensorType TensorType = ""
	FloatTensorType   TensorType = "float"
	DoubleTensorType  TensorType = "double"
)

var _allTensorTypes = []TensorType{
	FloatTensorType,
	DoubleTensorType,
}

func TensorTypeFromString(s string) TensorType {
	for _, tensorType := range _allTensorTypes {
		if TensorType(s) == tensorType {
			return tensorType
		}
	}
	return UnknownTensorType
}

func TensorTypeStrings() []string {
	strs := make([]string, len(_allTensorTypes))
	for i, tensorType := range _allTensorTypes {
		strs[i] = string(tensorType)
	}
	return strs
}

func (t TensorType) String() string {
	return string(t)
}
