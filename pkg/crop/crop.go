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

// Package crop computes crop-window geometry over the spatial axes of an
// image. Windows are half-open index ranges; foreground bounding boxes are
// inclusive on both ends.
package crop

import (
	"math/rand"

	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

type Window struct {
	Start []int
	End   []int
}

func (w Window) Shape() []int {
	shape := make([]int, len(w.Start))
	for i := range w.Start {
		shape[i] = w.End[i] - w.Start[i]
	}
	return shape
}

// FromBoundingBox places a window relative to the foreground bounding box
// [boxMin, boxMax]. A nil start centers the window on the box; a nil
// outputSize takes the box extent. Windows are clamped into [0, dim] per axis.
func FromBoundingBox(shape []int, boxMin []int, boxMax []int, start *[]int, outputSize *[]int) (Window, error) {
	dim := len(shape)
	if len(boxMin) != dim || len(boxMax) != dim {
		return Window{}, ErrorRankMismatch(dim, boxMin)
	}
	if start != nil && len(*start) != dim {
		return Window{}, ErrorRankMismatch(dim, *start)
	}
	if outputSize != nil && len(*outputSize) != dim {
		return Window{}, ErrorRankMismatch(dim, *outputSize)
	}

	size := make([]int, dim)
	if outputSize != nil {
		copy(size, *outputSize)
	} else {
		for i := range size {
			size[i] = boxMax[i] - boxMin[i] + 1
		}
	}

	windowStart := make([]int, dim)
	if start != nil {
		copy(windowStart, *start)
	} else {
		for i := range windowStart {
			center := (boxMin[i] + boxMax[i] + 1) / 2
			windowStart[i] = center - size[i]/2
		}
	}

	return clampWindow(shape, windowStart, size)
}

// Random draws a uniform window start within the margin left by outputSize
func Random(shape []int, outputSize []int, rng *rand.Rand) (Window, error) {
	dim := len(shape)
	if len(outputSize) != dim {
		return Window{}, ErrorRankMismatch(dim, outputSize)
	}

	start := make([]int, dim)
	for i := range start {
		margin := shape[i] - outputSize[i]
		if margin < 0 {
			return Window{}, ErrorWindowTooLarge(outputSize, shape)
		}
		start[i] = rng.Intn(margin + 1)
	}
	return clampWindow(shape, start, slices.CopyInts(outputSize))
}

// RandomForeground centers the window on a uniformly drawn point of the
// foreground bounding box [boxMin, boxMax], clamped into range
func RandomForeground(shape []int, outputSize []int, boxMin []int, boxMax []int, rng *rand.Rand) (Window, error) {
	dim := len(shape)
	if len(outputSize) != dim {
		return Window{}, ErrorRankMismatch(dim, outputSize)
	}
	if len(boxMin) != dim || len(boxMax) != dim {
		return Window{}, ErrorRankMismatch(dim, boxMin)
	}

	start := make([]int, dim)
	for i := range start {
		if shape[i] < outputSize[i] {
			return Window{}, ErrorWindowTooLarge(outputSize, shape)
		}
		point := boxMin[i] + rng.Intn(boxMax[i]-boxMin[i]+1)
		start[i] = point - outputSize[i]/2
	}
	return clampWindow(shape, start, slices.CopyInts(outputSize))
}

func clampWindow(shape []int, start []int, size []int) (Window, error) {
	dim := len(shape)
	end := make([]int, dim)
	for i := 0; i < dim; i++ {
		if size[i] > shape[i] {
			return Window{}, ErrorWindowTooLarge(size, shape)
		}
		if start[i] > shape[i]-size[i] {
			start[i] = shape[i] - size[i]
		}
		if start[i] < 0 {
			start[i] = 0
		}
		end[i] = start[i] + size[i]
	}
	return Window{Start: start, End: end}, nil
}
