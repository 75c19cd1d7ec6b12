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

package crop

import (
	"math/rand"
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/pointer"
	"github.com/stretchr/testify/require"
)

func TestFromBoundingBoxDefaults(t *testing.T) {
	// nil start and nil output size: the window is the box itself
	window, err := FromBoundingBox([]int{256, 256}, []int{50, 60}, []int{149, 179}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{50, 60}, window.Start)
	require.Equal(t, []int{150, 180}, window.End)
	require.Equal(t, []int{100, 120}, window.Shape())
}

func TestFromBoundingBoxCentered(t *testing.T) {
	// nil start: centered on the box
	window, err := FromBoundingBox([]int{256, 256}, []int{50, 60}, []int{149, 179}, nil, pointer.IntList(64, 64))
	require.NoError(t, err)
	require.Equal(t, []int{68, 88}, window.Start) // center (100, 120) minus half the window
	require.Equal(t, []int{132, 152}, window.End)
}

func TestFromBoundingBoxExplicitStart(t *testing.T) {
	window, err := FromBoundingBox([]int{256, 256}, []int{50, 60}, []int{149, 179}, pointer.IntList(10, 20), pointer.IntList(64, 64))
	require.NoError(t, err)
	require.Equal(t, []int{10, 20}, window.Start)
	require.Equal(t, []int{74, 84}, window.End)
}

func TestFromBoundingBoxStartWithoutSize(t *testing.T) {
	// explicit start with nil output size takes the box extent
	window, err := FromBoundingBox([]int{256, 256}, []int{50, 60}, []int{149, 179}, pointer.IntList(10, 20), nil)
	require.NoError(t, err)
	require.Equal(t, []int{10, 20}, window.Start)
	require.Equal(t, []int{110, 140}, window.End)
}

func TestFromBoundingBoxClamped(t *testing.T) {
	// a box near the border cannot push the window out of range
	window, err := FromBoundingBox([]int{100, 100}, []int{0, 90}, []int{9, 99}, nil, pointer.IntList(40, 40))
	require.NoError(t, err)
	require.Equal(t, []int{0, 60}, window.Start)
	require.Equal(t, []int{40, 100}, window.End)
}

func TestFromBoundingBoxRankMismatch(t *testing.T) {
	_, err := FromBoundingBox([]int{100, 100}, []int{0}, []int{9}, nil, nil)
	require.Error(t, err)
	require.Equal(t, ErrRankMismatch, errors.GetKind(err))

	_, err = FromBoundingBox([]int{100, 100}, []int{0, 0}, []int{9, 9}, pointer.IntList(1), nil)
	require.Error(t, err)
	require.Equal(t, ErrRankMismatch, errors.GetKind(err))
}

func TestFromBoundingBoxTooLarge(t *testing.T) {
	_, err := FromBoundingBox([]int{100, 100}, []int{0, 0}, []int{9, 9}, nil, pointer.IntList(101, 40))
	require.Error(t, err)
	require.Equal(t, ErrWindowTooLarge, errors.GetKind(err))
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		window, err := Random([]int{100, 120}, []int{64, 64}, rng)
		require.NoError(t, err)
		require.Equal(t, []int{64, 64}, window.Shape())
		for axis := range window.Start {
			require.GreaterOrEqual(t, window.Start[axis], 0)
		}
		require.LessOrEqual(t, window.End[0], 100)
		require.LessOrEqual(t, window.End[1], 120)
	}
}

func TestRandomExactFit(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	window, err := Random([]int{64, 64}, []int{64, 64}, rng)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, window.Start)
	require.Equal(t, []int{64, 64}, window.End)
}

func TestRandomTooLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	_, err := Random([]int{32, 32}, []int{64, 64}, rng)
	require.Error(t, err)
	require.Equal(t, ErrWindowTooLarge, errors.GetKind(err))
}

func TestRandomForeground(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		window, err := RandomForeground([]int{100, 100}, []int{32, 32}, []int{40, 40}, []int{59, 59}, rng)
		require.NoError(t, err)
		require.Equal(t, []int{32, 32}, window.Shape())
		for axis := range window.Start {
			require.GreaterOrEqual(t, window.Start[axis], 0)
			require.LessOrEqual(t, window.End[axis], 100)
			// the window must overlap the box
			require.Less(t, window.Start[axis], 60)
			require.Greater(t, window.End[axis], 40)
		}
	}
}
