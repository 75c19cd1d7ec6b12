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

package pipelineconfig

import (
	"github.com/cortexlabs/yaml"

	cr "github.com/cortexlabs/medseg/pkg/lib/configreader"
	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/hash"
)

const (
	DatasetSectionKey  = "dataset"
	NetworkSectionKey  = "network"
	TrainingSectionKey = "training"
	TestingSectionKey  = "testing"
)

var sectionKeys = []string{
	DatasetSectionKey,
	NetworkSectionKey,
	TrainingSectionKey,
	TestingSectionKey,
}

// Config is the full pipeline contract: the four typed sections plus the
// unknown keys tolerated during the read. Treated as immutable after load.
type Config struct {
	Dataset  DatasetConfig  `json:"dataset" yaml:"dataset"`
	Network  NetworkConfig  `json:"network" yaml:"network"`
	Training TrainingConfig `json:"training" yaml:"training"`
	Testing  TestingConfig  `json:"testing" yaml:"testing"`

	// section name to sorted key names not claimed by any schema
	UnknownKeys map[string][]string `json:"-" yaml:"-"`
}

func NewForFile(filePath string) (*Config, error) {
	iniConfig, err := cr.ReadINIFile(filePath)
	if err != nil {
		return nil, err
	}
	return newForINI(iniConfig)
}

func NewForBytes(data []byte, filePath string) (*Config, error) {
	iniConfig, err := cr.ReadINIBytes(data, filePath)
	if err != nil {
		return nil, err
	}
	return newForINI(iniConfig)
}

func newForINI(iniConfig *cr.INIConfig) (*Config, error) {
	config := &Config{}
	var allErrs []error

	sections := make(map[string]map[string]string, len(sectionKeys))
	for _, sectionKey := range sectionKeys {
		strMap, ok := iniConfig.Section(sectionKey)
		if !ok {
			allErrs = append(allErrs, cr.ErrorSectionMustBeDefined(sectionKey))
			continue
		}
		sections[sectionKey] = strMap
	}
	if errors.HasError(allErrs) {
		return nil, errors.FirstError(allErrs...)
	}

	allErrs, _ = errors.AddErrors(allErrs, config.Dataset.read(sections[DatasetSectionKey]), DatasetSectionKey)
	allErrs, _ = errors.AddErrors(allErrs, config.Network.read(sections[NetworkSectionKey]), NetworkSectionKey)
	allErrs, _ = errors.AddErrors(allErrs, config.Training.read(sections[TrainingSectionKey]), TrainingSectionKey)
	allErrs, _ = errors.AddErrors(allErrs, config.Testing.read(sections[TestingSectionKey]), TestingSectionKey)

	if errors.HasError(allErrs) {
		return nil, errors.FirstError(allErrs...)
	}

	config.UnknownKeys = map[string][]string{}
	addUnknownKeys(config.UnknownKeys, DatasetSectionKey, config.Dataset.unknownKeys(sections[DatasetSectionKey]))
	addUnknownKeys(config.UnknownKeys, NetworkSectionKey, cr.UnknownKeys(&config.Network, sections[NetworkSectionKey], networkValidation()))
	addUnknownKeys(config.UnknownKeys, TrainingSectionKey, cr.UnknownKeys(&config.Training, sections[TrainingSectionKey], trainingValidation()))
	addUnknownKeys(config.UnknownKeys, TestingSectionKey, cr.UnknownKeys(&config.Testing, sections[TestingSectionKey], testingValidation()))

	return config, nil
}

func addUnknownKeys(unknownKeys map[string][]string, sectionKey string, keys []string) {
	if len(keys) > 0 {
		unknownKeys[sectionKey] = keys
	}
}

// Hash fingerprints the typed structure (not the source text, so formatting
// and comments do not affect it)
func (config *Config) Hash() (string, error) {
	bytes, err := yaml.Marshal(config)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return hash.Bytes(bytes), nil
}
