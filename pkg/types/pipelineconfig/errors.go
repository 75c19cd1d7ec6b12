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

import (
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

const (
	ErrInvalidDeviceName           = "pipelineconfig.invalid_device_name"
	ErrUnknownTransform            = "pipelineconfig.unknown_transform"
	ErrStageCountMismatch          = "pipelineconfig.stage_count_mismatch"
	ErrMilestonesNotIncreasing     = "pipelineconfig.milestones_not_increasing"
	ErrIterStartGreaterThanMax     = "pipelineconfig.iter_start_greater_than_max"
	ErrMinGreaterThanMax           = "pipelineconfig.min_greater_than_max"
	ErrNormalizeStatsLenMismatch   = "pipelineconfig.normalize_stats_length_mismatch"
	ErrPatchShapeRankMismatch      = "pipelineconfig.patch_shape_rank_mismatch"
	ErrPatchOutputExceedsInput     = "pipelineconfig.patch_output_exceeds_input"
	ErrPatchShapesPartiallyDefined = "pipelineconfig.patch_shapes_partially_defined"
)

func ErrorInvalidDeviceName(provided string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidDeviceName,
		Message: fmt.Sprintf("invalid device name %s (must be \"cpu\", \"cuda\", or \"cuda:<n>\")", s.UserStr(provided)),
	})
}

func ErrorUnknownTransform(name string, registered []string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnknownTransform,
		Message: fmt.Sprintf("unknown transform %s (must be %s)", s.UserStr(name), s.StrsOr(userStrs(registered))),
	})
}

func ErrorStageCountMismatch(numFeatureChns int, numDropout int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrStageCountMismatch,
		Message: fmt.Sprintf("feature_chns and dropout must list one value per stage (got %d feature channels and %d dropout rates)", numFeatureChns, numDropout),
	})
}

func ErrorMilestonesNotIncreasing(milestones []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMilestonesNotIncreasing,
		Message: fmt.Sprintf("%s: milestones must be positive and strictly increasing", s.UserStr(milestones)),
	})
}

func ErrorIterStartGreaterThanMax(iterStart int, iterMax int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrIterStartGreaterThanMax,
		Message: fmt.Sprintf("iter_start (%d) cannot be greater than iter_max (%d)", iterStart, iterMax),
	})
}

func ErrorMinGreaterThanMax(minKey string, minVal float64, maxKey string, maxVal float64) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMinGreaterThanMax,
		Message: fmt.Sprintf("%s (%s) cannot be greater than %s (%s)", minKey, s.Float64(minVal), maxKey, s.Float64(maxVal)),
	})
}

func ErrorNormalizeStatsLenMismatch(numMeans int, numStds int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrNormalizeStatsLenMismatch,
		Message: fmt.Sprintf("mean and std must list one value per channel (got %d means and %d stds)", numMeans, numStds),
	})
}

func ErrorPatchShapeRankMismatch(key1 string, shape1 []int, key2 string, shape2 []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrPatchShapeRankMismatch,
		Message: fmt.Sprintf("%s %s and %s %s must have the same number of axes", key1, s.UserStr(shape1), key2, s.UserStr(shape2)),
	})
}

func ErrorPatchOutputExceedsInput(outputShape []int, inputShape []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrPatchOutputExceedsInput,
		Message: fmt.Sprintf("mini_patch_output_shape %s cannot exceed mini_patch_input_shape %s on any axis", s.UserStr(outputShape), s.UserStr(inputShape)),
	})
}

func ErrorPatchShapesPartiallyDefined() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrPatchShapesPartiallyDefined,
		Message: "mini_patch_input_shape, mini_patch_output_shape, and mini_patch_stride must be defined together",
	})
}

func userStrs(vals []string) []string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = s.UserStr(val)
	}
	return strs
}
