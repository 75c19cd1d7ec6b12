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
	"github.com/cortexlabs/medseg/pkg/lib/slices"
)

// Table remaps label values through parallel source/target sequences. Values
// not listed in the sources pass through unchanged.
type Table struct {
	sources []int
	targets []int
	mapping map[int]int
}

func New(sources []int, targets []int) (*Table, error) {
	if len(sources) != len(targets) {
		return nil, ErrorLengthMismatch(len(sources), len(targets))
	}

	mapping := make(map[int]int, len(sources))
	for i, source := range sources {
		if _, ok := mapping[source]; ok {
			return nil, ErrorDuplicateSource(source)
		}
		mapping[source] = targets[i]
	}

	return &Table{
		sources: slices.CopyInts(sources),
		targets: slices.CopyInts(targets),
		mapping: mapping,
	}, nil
}

func (table *Table) Apply(label int) int {
	if target, ok := table.mapping[label]; ok {
		return target
	}
	return label
}

func (table *Table) ApplyAll(labels []int) []int {
	mapped := make([]int, len(labels))
	for i, label := range labels {
		mapped[i] = table.Apply(label)
	}
	return mapped
}

// Invert returns the target-to-source table; the targets must be unique
func (table *Table) Invert() (*Table, error) {
	return New(table.targets, table.sources)
}

func (table *Table) Sources() []int {
	return slices.CopyInts(table.sources)
}

func (table *Table) Targets() []int {
	return slices.CopyInts(table.targets)
}

func (table *Table) Len() int {
	return len(table.sources)
}
