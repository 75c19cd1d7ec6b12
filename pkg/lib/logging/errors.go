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

package logging

import (
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

const (
	ErrInvalidLogLevel = "logging.invalid_log_level"
)

func ErrorInvalidLogLevel(provided string, logLevels []string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidLogLevel,
		Message: fmt.Sprintf("invalid log level (got %s, must be %s)", s.UserStr(provided), s.StrsOr(slices.SortStrs(logLevels))),
	})
}
