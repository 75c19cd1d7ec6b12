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

package tiling

import (
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/stretchr/testify/require"
)

func TestNewPlanSingleWindow(t *testing.T) {
	// image no larger than the patch: one window covering everything
	plan, err := NewPlan([]int{64, 64}, []int{96, 96}, []int{64, 64}, []int{64, 64})
	require.NoError(t, err)
	require.Len(t, plan.Patches, 1)

	patch := plan.Patches[0]
	require.Equal(t, []int{0, 0}, patch.Input.Start)
	require.Equal(t, []int{64, 64}, patch.Input.End)
	require.Equal(t, []int{0, 0}, patch.Output.Start)
	require.Equal(t, []int{64, 64}, patch.Output.End)
}

func TestNewPlanCoverage(t *testing.T) {
	plan, err := NewPlan([]int{100, 150}, []int{64, 64}, []int{48, 48}, []int{48, 48})
	require.NoError(t, err)

	// starts per axis: [0, 36] and [0, 48, 86]
	require.Len(t, plan.Patches, 6)

	covered := make([][]bool, 100)
	for i := range covered {
		covered[i] = make([]bool, 150)
	}
	for _, patch := range plan.Patches {
		require.Equal(t, []int{64, 64}, patch.Input.Shape())
		for i := patch.Output.Start[0]; i < patch.Output.End[0]; i++ {
			for j := patch.Output.Start[1]; j < patch.Output.End[1]; j++ {
				covered[i][j] = true
			}
		}
	}
	for i := range covered {
		for j := range covered[i] {
			require.True(t, covered[i][j], "uncovered voxel (%d, %d)", i, j)
		}
	}
}

func TestNewPlanBorderClamp(t *testing.T) {
	plan, err := NewPlan([]int{100}, []int{64}, []int{64}, []int{64})
	require.NoError(t, err)
	require.Len(t, plan.Patches, 2)

	last := plan.Patches[1]
	require.Equal(t, []int{36}, last.Input.Start)
	require.Equal(t, []int{100}, last.Input.End)
}

func TestNewPlanOutputMargin(t *testing.T) {
	plan, err := NewPlan([]int{200}, []int{96}, []int{64}, []int{64})
	require.NoError(t, err)

	for _, patch := range plan.Patches {
		if patch.Input.Start[0] == 0 {
			require.Equal(t, 0, patch.Output.Start[0])
		} else {
			require.Equal(t, patch.Input.Start[0]+16, patch.Output.Start[0])
		}
		if patch.Input.End[0] == 200 {
			require.Equal(t, 200, patch.Output.End[0])
		} else {
			require.Equal(t, patch.Input.End[0]-16, patch.Output.End[0])
		}
	}
}

func TestNewPlanErrors(t *testing.T) {
	_, err := NewPlan([]int{100, 100}, []int{64}, []int{48, 48}, []int{48, 48})
	require.Error(t, err)
	require.Equal(t, ErrRankMismatch, errors.GetKind(err))

	_, err = NewPlan([]int{100, 100}, []int{64, 64}, []int{96, 48}, []int{48, 48})
	require.Error(t, err)
	require.Equal(t, ErrOutputExceedsInput, errors.GetKind(err))

	_, err = NewPlan([]int{100, 100}, []int{64, 64}, []int{48, 48}, []int{0, 48})
	require.Error(t, err)
	require.Equal(t, ErrInvalidStride, errors.GetKind(err))
}
