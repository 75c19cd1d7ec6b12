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

package labelmap

import (
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
)

const (
	ErrLengthMismatch  = "labelmap.length_mismatch"
	ErrDuplicateSource = "labelmap.duplicate_source"
)

func ErrorLengthMismatch(numSources int, numTargets int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrLengthMismatch,
		Message: fmt.Sprintf("source and target lists must have equal length (got %d sources and %d targets)", numSources, numTargets),
	})
}

func ErrorDuplicateSource(source int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDuplicateSource,
		Message: fmt.Sprintf("source value %d is listed more than once", source),
	})
}
