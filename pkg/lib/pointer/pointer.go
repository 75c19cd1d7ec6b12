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

package pointer

func Int(val int) *int {
	return &val
}

func Float64(val float64) *float64 {
	return &val
}

func String(val string) *string {
	return &val
}

func Bool(val bool) *bool {
	return &val
}

func IntList(vals ...int) *[]int {
	return &vals
}

func Float64List(vals ...float64) *[]float64 {
	return &vals
}
