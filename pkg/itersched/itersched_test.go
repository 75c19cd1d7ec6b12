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
	"testing"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/types/pipelineconfig"
	"github.com/stretchr/testify/require"
)

func testTrainingConfig() pipelineconfig.TrainingConfig {
	return pipelineconfig.TrainingConfig{
		BatchSize:        4,
		LearningRate:     0.001,
		LRMilestones:     []int{2000, 4000},
		LRGamma:          0.5,
		CheckpointPrefix: "model/unet2d",
		IterStart:        0,
		IterMax:          10000,
		IterValid:        100,
		IterSave:         5000,
	}
}

func TestCheckpointPath(t *testing.T) {
	sched, err := New(testTrainingConfig())
	require.NoError(t, err)

	require.Equal(t, "model/unet2d_5000.pt", sched.CheckpointPath(5000))
	require.Equal(t, "model/unet2d_10000.pt", sched.CheckpointPath(10000))
}

func TestShouldValidate(t *testing.T) {
	sched, err := New(testTrainingConfig())
	require.NoError(t, err)

	require.False(t, sched.ShouldValidate(0))
	require.False(t, sched.ShouldValidate(99))
	require.True(t, sched.ShouldValidate(100))
	require.True(t, sched.ShouldValidate(200))
	require.True(t, sched.ShouldValidate(10000))
	require.False(t, sched.ShouldValidate(10100))
}

func TestShouldValidateAlwaysAtIterMax(t *testing.T) {
	tc := testTrainingConfig()
	tc.IterMax = 10050 // not a multiple of iter_valid
	sched, err := New(tc)
	require.NoError(t, err)

	require.True(t, sched.ShouldValidate(10050))
	require.False(t, sched.ShouldValidate(10049))
}

func TestShouldSave(t *testing.T) {
	sched, err := New(testTrainingConfig())
	require.NoError(t, err)

	require.False(t, sched.ShouldSave(4999))
	require.True(t, sched.ShouldSave(5000))
	require.True(t, sched.ShouldSave(10000))
	require.False(t, sched.ShouldSave(15000))

	require.Equal(t, []int{5000, 10000}, sched.SaveIters())
}

func TestShouldSaveSkipsResumedRange(t *testing.T) {
	tc := testTrainingConfig()
	tc.IterStart = 5000
	sched, err := New(tc)
	require.NoError(t, err)

	// resuming from 5000: that checkpoint already exists
	require.False(t, sched.ShouldSave(5000))
	require.True(t, sched.ShouldSave(10000))
}

func TestLearningRate(t *testing.T) {
	sched, err := New(testTrainingConfig())
	require.NoError(t, err)

	require.InDelta(t, 0.001, sched.LearningRate(1999), 1e-12)
	require.InDelta(t, 0.0005, sched.LearningRate(2000), 1e-12)
	require.InDelta(t, 0.0005, sched.LearningRate(3999), 1e-12)
	require.InDelta(t, 0.00025, sched.LearningRate(4000), 1e-12)
	require.InDelta(t, 0.00025, sched.LearningRate(10000), 1e-12)
}

func TestNewInvalid(t *testing.T) {
	tc := testTrainingConfig()
	tc.IterValid = 0
	_, err := New(tc)
	require.Error(t, err)
	require.Equal(t, ErrInvalidInterval, errors.GetKind(err))

	tc = testTrainingConfig()
	tc.IterSave = -1
	_, err = New(tc)
	require.Error(t, err)
	require.Equal(t, ErrInvalidInterval, errors.GetKind(err))

	tc = testTrainingConfig()
	tc.IterStart = 20000
	_, err = New(tc)
	require.Error(t, err)
	require.Equal(t, ErrInvalidRange, errors.GetKind(err))
}
