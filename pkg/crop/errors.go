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
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

const (
	ErrRankMismatch   = "crop.rank_mismatch"
	ErrWindowTooLarge = "crop.window_too_large"
)

func ErrorRankMismatch(dim int, provided []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrRankMismatch,
		Message: fmt.Sprintf("%s does not match the image's %d spatial axes", s.UserStr(provided), dim),
	})
}

func ErrorWindowTooLarge(size []int, shape []int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrWindowTooLarge,
		Message: fmt.Sprintf("window size %s does not fit in image shape %s", s.UserStr(size), s.UserStr(shape)),
	})
}
