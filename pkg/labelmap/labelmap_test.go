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
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	table, err := New([]int{0, 255}, []int{0, 1})
	require.NoError(t, err)

	require.Equal(t, 0, table.Apply(0))
	require.Equal(t, 1, table.Apply(255))
	require.Equal(t, 128, table.Apply(128)) // unlisted values pass through
	require.Equal(t, 2, table.Len())

	require.Equal(t, []int{0, 1, 1, 0}, table.ApplyAll([]int{0, 255, 255, 0}))
}

func TestInvert(t *testing.T) {
	table, err := New([]int{0, 1}, []int{0, 255})
	require.NoError(t, err)

	inverse, err := table.Invert()
	require.NoError(t, err)
	require.Equal(t, 1, inverse.Apply(255))
	require.Equal(t, 0, inverse.Apply(0))
}

func TestInvertDuplicateTargets(t *testing.T) {
	table, err := New([]int{1, 2}, []int{1, 1})
	require.NoError(t, err)

	_, err = table.Invert()
	require.Error(t, err)
	require.Equal(t, ErrDuplicateSource, errors.GetKind(err))
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]int{0, 255}, []int{0})
	require.Error(t, err)
	require.Equal(t, ErrLengthMismatch, errors.GetKind(err))
}

func TestNewDuplicateSource(t *testing.T) {
	_, err := New([]int{0, 0}, []int{1, 2})
	require.Error(t, err)
	require.Equal(t, ErrDuplicateSource, errors.GetKind(err))
}

func TestTableIsACopy(t *testing.T) {
	sources := []int{0, 255}
	targets := []int{0, 1}
	table, err := New(sources, targets)
	require.NoError(t, err)

	sources[1] = 7
	require.Equal(t, []int{0, 255}, table.Sources())
	require.Equal(t, []int{0, 1}, table.Targets())
}
