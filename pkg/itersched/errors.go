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

package itersched

import (
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
)

const (
	ErrInvalidInterval = "itersched.invalid_interval"
	ErrInvalidRange    = "itersched.invalid_range"
)

func ErrorInvalidInterval(name string, provided int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidInterval,
		Message: fmt.Sprintf("%s must be at least 1 (got %d)", name, provided),
	})
}

func ErrorInvalidRange(iterStart int, iterMax int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidRange,
		Message: fmt.Sprintf("iteration range [%d, %d] is invalid", iterStart, iterMax),
	})
}
