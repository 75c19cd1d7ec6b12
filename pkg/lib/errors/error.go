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

package errors

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const ErrNotMedSegError = "error"

type Error struct {
	Kind    string
	Message string
	Cause   error
	stack   *stack
}

func (medsegError *Error) Error() string {
	return medsegError.Message
}

func (medsegError *Error) StackTrace() pkgerrors.StackTrace {
	stackTrace := make([]pkgerrors.Frame, len(*medsegError.stack))
	for i := 0; i < len(stackTrace); i++ {
		stackTrace[i] = pkgerrors.Frame((*medsegError.stack)[i])
	}
	return stackTrace
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	medsegError := getMedSegError(err)

	if medsegError == nil {
		medsegError = &Error{
			Kind:    ErrNotMedSegError,
			Message: strings.TrimSpace(err.Error()),
			Cause:   err,
		}
	}

	if medsegError.stack == nil {
		medsegError.stack = callers()
	}

	return medsegError
}

func Wrap(err error, strs ...string) error {
	if err == nil {
		return nil
	}

	medsegError := WithStack(err).(*Error)

	strs = removeEmptyStrs(strs)
	strs = append(strs, medsegError.Message)
	medsegError.Message = strings.Join(strs, ": ")

	return medsegError
}

// adds to the end of the error message (without adding any whitespace or punctuation)
func Append(err error, str string) error {
	if err == nil {
		return nil
	}

	medsegError := WithStack(err).(*Error)
	medsegError.Message = medsegError.Message + str
	return medsegError
}

func getMedSegError(err error) *Error {
	if medsegError, ok := err.(*Error); ok {
		return medsegError
	}
	return nil
}

func GetKind(err error) string {
	if medsegError, ok := err.(*Error); ok {
		return medsegError.Kind
	}
	return ErrNotMedSegError
}

// Returns nil if no cause
func Cause(err error) error {
	if medsegError, ok := err.(*Error); ok {
		return medsegError.Cause
	}
	return nil
}

func CauseOrSelf(err error) error {
	if medsegError, ok := err.(*Error); ok {
		cause := medsegError.Cause
		if cause != nil {
			return cause
		}
	}
	return err
}

func (medsegError *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, medsegError.Message)
			medsegError.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, medsegError.Message)
	case 'q':
		fmt.Fprintf(s, "%q", medsegError.Message)
	}
}

func removeEmptyStrs(strs []string) []string {
	var cleanStrs []string
	for _, str := range strs {
		if str != "" {
			cleanStrs = append(cleanStrs, str)
		}
	}
	return cleanStrs
}
