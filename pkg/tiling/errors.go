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
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

const (
	ErrRankMismatch       = "tiling.rank_mismatch"
	ErrOutputExceedsInput = "tiling.output_exceeds_input"
	ErrInvalidStride      = "tiling.invalid_stride"
)

func ErrorRankMismatch(name string, shape []int, imageShape []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrRankMismatch,
		Message: fmt.Sprintf("%s %s does not match image shape %s", name, s.UserStr(shape), s.UserStr(imageShape)),
	})
}

func ErrorOutputExceedsInput(outputShape []int, inputShape []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrOutputExceedsInput,
		Message: fmt.Sprintf("output shape %s cannot exceed input shape %s on any axis", s.UserStr(outputShape), s.UserStr(inputShape)),
	})
}

func ErrorInvalidStride(stride []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidStride,
		Message: fmt.Sprintf("%s: stride must be at least 1 on every axis", s.UserStr(stride)),
	})
}
