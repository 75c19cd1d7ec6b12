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

// Package tiling computes the mini-patch inference plan: the ordered set of
// sliding windows covering an image's spatial axes.
package tiling

import (
	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

// Window is a half-open index range over the spatial axes
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

// Patch pairs the window read from the image with the window of the image the
// patch's central output region covers
type Patch struct {
	Input  Window
	Output Window
}

type Plan struct {
	ImageShape  []int
	InputShape  []int
	OutputShape []int
	Stride      []int
	Patches     []Patch
}

// NewPlan tiles the image with input windows at the given stride. The final
// window per axis is clamped to the border; an image no larger than the patch
// yields a single window. The output window is the input window shrunk by the
// input/output margin, stretched back to the border on boundary patches so
// the union of output windows covers the image.
func NewPlan(imageShape []int, inputShape []int, outputShape []int, stride []int) (*Plan, error) {
	dim := len(imageShape)
	if len(inputShape) != dim {
		return nil, ErrorRankMismatch("mini_patch_input_shape", inputShape, imageShape)
	}
	if len(outputShape) != dim {
		return nil, ErrorRankMismatch("mini_patch_output_shape", outputShape, imageShape)
	}
	if len(stride) != dim {
		return nil, ErrorRankMismatch("mini_patch_stride", stride, imageShape)
	}
	for i := 0; i < dim; i++ {
		if outputShape[i] > inputShape[i] {
			return nil, ErrorOutputExceedsInput(outputShape, inputShape)
		}
		if stride[i] < 1 {
			return nil, ErrorInvalidStride(stride)
		}
	}

	// patch extent per axis, clamped to the image
	extent := make([]int, dim)
	for i := 0; i < dim; i++ {
		extent[i] = inputShape[i]
		if extent[i] > imageShape[i] {
			extent[i] = imageShape[i]
		}
	}

	axisStarts := make([][]int, dim)
	for i := 0; i < dim; i++ {
		axisStarts[i] = starts(imageShape[i], extent[i], stride[i])
	}

	plan := &Plan{
		ImageShape:  slices.CopyInts(imageShape),
		InputShape:  slices.CopyInts(inputShape),
		OutputShape: slices.CopyInts(outputShape),
		Stride:      slices.CopyInts(stride),
	}

	start := make([]int, dim)
	var build func(axis int)
	build = func(axis int) {
		if axis == dim {
			plan.Patches = append(plan.Patches, newPatch(imageShape, extent, inputShape, outputShape, start))
			return
		}
		for _, s := range axisStarts[axis] {
			start[axis] = s
			build(axis + 1)
		}
	}
	build(0)

	return plan, nil
}

// starts returns the window starts along one axis: multiples of stride, the
// last start clamped so the window ends at the border
func starts(imageDim int, extent int, stride int) []int {
	last := imageDim - extent
	var result []int
	for s := 0; s < last; s += stride {
		result = append(result, s)
	}
	return append(result, last)
}

func newPatch(imageShape []int, extent []int, inputShape []int, outputShape []int, start []int) Patch {
	dim := len(imageShape)
	input := Window{Start: make([]int, dim), End: make([]int, dim)}
	output := Window{Start: make([]int, dim), End: make([]int, dim)}

	for i := 0; i < dim; i++ {
		input.Start[i] = start[i]
		input.End[i] = start[i] + extent[i]

		margin := (inputShape[i] - outputShape[i]) / 2
		output.Start[i] = input.Start[i] + margin
		output.End[i] = input.End[i] - margin

		// boundary patches write up to the border
		if input.Start[i] == 0 {
			output.Start[i] = 0
		}
		if input.End[i] == imageShape[i] {
			output.End[i] = imageShape[i]
		}
	}
	return Patch{Input: input, Output: output}
}
