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

type LossType string

const (
	UnknownLossType      LossType = ""
	CrossEntropyLossType LossType = "CrossEntropyLoss"
	DiceLossType         LossType = "DiceLoss"
	MSELossType          LossType = "MSELoss"
	FocalLossType        LossType = "FocalLoss"
)

var _allLossTypes = []LossType{
	CrossEntropyLossType,
	DiceLossType,
	MSELossType,
	FocalLossType,
}

func LossTypeFromString(s string) LossType {
	for _, lossType := range _allLossTypes {
		if LossType(s) == lossType {
			return lossType
		}
	}
	return UnknownLossType
}

func LossTypeStrings() []string {
	strs := make([]string, len(_allLossTypes))
	for i, lossType := range _allLossTypes {
		strs[i] = string(lossType)
	}
	return strs
}

func (t LossType) String() string {
	return string(t)
}
