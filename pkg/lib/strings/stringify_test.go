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

package strings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64(t *testing.T) {
	require.Equal(t, "0.5", Float64(0.5))
	require.Equal(t, "3.0", Float64(3))
	require.Equal(t, "0.00001", Float64(0.00001))
}

func TestUserStr(t *testing.T) {
	require.Equal(t, `"None"`, UserStr("None"))
	require.Equal(t, "true", UserStr(true))
	require.Equal(t, "3", UserStr(3))
	require.Equal(t, "0.3", UserStr(0.3))
	require.Equal(t, "[1, 2]", UserStr([]int{1, 2}))
	require.Equal(t, `["a", "b"]`, UserStr([]string{"a", "b"}))
}

func TestStrsOr(t *testing.T) {
	require.Equal(t, "", StrsOr(nil))
	require.Equal(t, "a", StrsOr([]string{"a"}))
	require.Equal(t, "a or b", StrsOr([]string{"a", "b"}))
	require.Equal(t, "a, b, or c", StrsOr([]string{"a", "b", "c"}))
}
