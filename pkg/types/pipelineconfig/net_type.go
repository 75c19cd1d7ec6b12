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

type NetType string

const (
	UnknownNetType NetType = ""
	UNet2DNetType  NetType = "UNet2D"
	UNet3DNetType  NetType = "UNet3D"
)

var _allNetTypes = []NetType{
	UNet2DNetType,
	UNet3DNetType,
}

func NetTypeFromString(s string) NetType {
	for _, netType := range _allNetTypes {
		if NetType(s) == netType {
			return netType
		}
	}
	return UnknownNetType
}

func NetTypeStrings() []string {
	strs := make([]string, len(_allNetTypes))
	for i, netType := range _allNetTypes {
		strs[i] = string(netType)
	}
	return strs
}

func (t NetType) String() string {
	return string(t)
}

// Dimensionality returns the number of spatial axes the network consumes
func (t NetType) Dimensionality() int {
	switch t {
	case UNet3DNetType:
		return 3
	default:
		return 2
	}
}
