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

// Package itersched answers the training driver's scheduling questions:
// when to validate, when to checkpoint, where checkpoints live, and what the
// learning rate is at a given iteration.
package itersched

import (
	"fmt"

	"github.com/cortexlabs/medseg/pkg/lib/slices"
	"github.com/cortexlabs/medseg/pkg/types/pipelineconfig"
)

type Schedule struct {
	iterStart        int
	iterMax          int
	iterValid        int
	iterSave         int
	checkpointPrefix string
	baseLR           float64
	gamma            float64
	milestones       []int
}

func New(tc pipelineconfig.TrainingConfig) (*Schedule, error) {
	if tc.IterValid < 1 {
		return nil, ErrorInvalidInterval("iter_valid", tc.IterValid)
	}
	if tc.IterSave < 1 {
		return nil, ErrorInvalidInterval("iter_save", tc.IterSave)
	}
	if tc.IterStart < 0 || tc.IterStart > tc.IterMax {
		return nil, ErrorInvalidRange(tc.IterStart, tc.IterMax)
	}

	return &Schedule{
		iterStart:        tc.IterStart,
		iterMax:          tc.IterMax,
		iterValid:        tc.IterValid,
		iterSave:         tc.IterSave,
		checkpointPrefix: tc.CheckpointPrefix,
		baseLR:           tc.LearningRate,
		gamma:            tc.LRGamma,
		milestones:       slices.CopyInts(tc.LRMilestones),
	}, nil
}

// ShouldValidate reports whether a validation pass runs after iteration iter.
// Validation runs every iter_valid iterations in (iter_start, iter_max], and
// always at iter_max.
func (sched *Schedule) ShouldValidate(iter int) bool {
	if iter <= sched.iterStart || iter > sched.iterMax {
		return false
	}
	return iter%sched.iterValid == 0 || iter == sched.iterMax
}

// ShouldSave reports whether a checkpoint is written after iteration iter
func (sched *Schedule) ShouldSave(iter int) bool {
	if iter <= sched.iterStart || iter > sched.iterMax {
		return false
	}
	return iter%sched.iterSave == 0 || iter == sched.iterMax
}

func (sched *Schedule) CheckpointPath(iter int) string {
	return fmt.Sprintf("%s_%d.pt", sched.checkpointPrefix, iter)
}

// SaveIters lists the iterations at which checkpoints are written
func (sched *Schedule) SaveIters() []int {
	var iters []int
	for iter := sched.iterStart + 1; iter <= sched.iterMax; iter++ {
		if sched.ShouldSave(iter) {
			iters = append(iters, iter)
		}
	}
	return iters
}

// LearningRate applies milestone decay: the base rate times gamma raised to
// the number of milestones at or before iter
func (sched *Schedule) LearningRate(iter int) float64 {
	lr := sched.baseLR
	for _, milestone := range sched.milestones {
		if milestone > iter {
			break
		}
		lr *= sched.gamma
	}
	return lr
}

func (sched *Schedule) IterStart() int {
	return sched.iterStart
}

func (sched *Schedule) IterMax() int {
	return sched.iterMax
}
