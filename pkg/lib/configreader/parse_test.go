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

package configreader

import (
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/stretchr/testify/require"
)

func TestIsNone(t *testing.T) {
	require.True(t, IsNone("None"))
	require.True(t, IsNone("  None  "))
	require.False(t, IsNone("none"))
	require.False(t, IsNone("NONE"))
	require.False(t, IsNone("Nones"))
	require.False(t, IsNone(""))
}

func TestParseListLiteral(t *testing.T) {
	elems, err := ParseListLiteral("[2, 8, 32]")
	require.NoError(t, err)
	require.Equal(t, []string{"2", "8", "32"}, elems)

	elems, err = ParseListLiteral("  [a,b , c]  ")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, elems)

	elems, err = ParseListLiteral("[]")
	require.NoError(t, err)
	require.Equal(t, []string{}, elems)

	elems, err = ParseListLiteral("[single]")
	require.NoError(t, err)
	require.Equal(t, []string{"single"}, elems)
}

func TestParseListLiteralInvalid(t *testing.T) {
	for _, valStr := range []string{
		"[2, 8",
		"2, 8]",
		"2, 8",
		"[[2, 8]]",
		"[2, 8]]",
		"[2,, 8]",
		"[2, 8,]",
		"",
	} {
		_, err := ParseListLiteral(valStr)
		require.Error(t, err, valStr)
		require.Equal(t, ErrInvalidListLiteral, errors.GetKind(err), valStr)
	}
}

func TestBoolCaseSensitive(t *testing.T) {
	val, err := Bool("True", &BoolValidation{})
	require.NoError(t, err)
	require.True(t, val)

	val, err = Bool("False", &BoolValidation{})
	require.NoError(t, err)
	require.False(t, val)

	for _, valStr := range []string{"true", "false", "TRUE", "FALSE", "1", "0", "yes"} {
		_, err := Bool(valStr, &BoolValidation{})
		require.Error(t, err, valStr)
		require.Equal(t, ErrInvalidPrimitiveType, errors.GetKind(err), valStr)
	}
}

func TestFloat64ScientificNotation(t *testing.T) {
	val, err := Float64("1e-3", &Float64Validation{})
	require.NoError(t, err)
	require.Equal(t, 0.001, val)

	val, err = Float64("0.5", &Float64Validation{})
	require.NoError(t, err)
	require.Equal(t, 0.5, val)

	val, err = Float64("3", &Float64Validation{})
	require.NoError(t, err)
	require.Equal(t, float64(3), val)

	_, err = Float64("abc", &Float64Validation{})
	require.Error(t, err)
}
