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

type OptimizerType string

const (
	UnknownOptimizerType OptimizerType = ""
	SGDOptimizerType     OptimizerType = "SGD"
	AdamOptimizerType    OptimizerType = "Adam"
)

var _allOptimizerTypes = []OptimizerType{
	SGDOptimizerType,
	AdamOptimizerType,
}

func OptimizerTypeFromString(s string) OptimizerType {
	for _, optimizerType := range _allOptimizerTypes {
		if OptimizerType(s) == optimizerType {
			return optimizerType
		}
	}
	return UnknownOptimizerType
}

func OptimizerTypeStrings() []string {
	strs := make([]string, len(_allOptimizerTypes))
	for i, optimizerType := range _allOptimizerTypes {
		strs[i] = string(optimizerType)
	}
	return strs
}

func (t OptimizerType) String() string {
	return string(t)
}

// UsesMomentum reports whether the optimizer consumes the momentum key
func (t OptimizerType) UsesMomentum() bool {
	return t == SGDOptimizerType
}
