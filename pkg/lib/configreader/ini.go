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
	"bytes"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"gopkg.in/ini.v1"
)

var _iniLoadOptions = ini.LoadOptions{
	SpaceBeforeInlineComment: true,
}

// INIConfig is the lexical form of a sectioned key=value config file:
// ordered sections of ordered raw string values, no type information
type INIConfig struct {
	FilePath string
	file     *ini.File
}

func ReadINIFile(filePath string) (*INIConfig, error) {
	file, err := ini.LoadSources(_iniLoadOptions, filePath)
	if err != nil {
		return nil, ErrorParseConfig(filePath, err)
	}
	return &INIConfig{FilePath: filePath, file: file}, nil
}

func ReadINIBytes(data []byte, filePath string) (*INIConfig, error) {
	file, err := ini.LoadSources(_iniLoadOptions, data)
	if err != nil {
		return nil, ErrorParseConfig(filePath, err)
	}
	return &INIConfig{FilePath: filePath, file: file}, nil
}

func NewINIConfig(filePath string) *INIConfig {
	return &INIConfig{FilePath: filePath, file: ini.Empty(_iniLoadOptions)}
}

// SectionNames returns the declared sections in file order, skipping the
// implicit default section when it carries no keys
func (config *INIConfig) SectionNames() []string {
	var names []string
	for _, section := range config.file.Sections() {
		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}
		names = append(names, section.Name())
	}
	return names
}

func (config *INIConfig) HasSection(sectionName string) bool {
	_, err := config.file.GetSection(sectionName)
	return err == nil
}

// Section returns a section's key=value pairs as raw strings
func (config *INIConfig) Section(sectionName string) (map[string]string, bool) {
	section, err := config.file.GetSection(sectionName)
	if err != nil {
		return nil, false
	}
	sMap := make(map[string]string, len(section.Keys()))
	for _, key := range section.Keys() {
		sMap[key.Name()] = key.Value()
	}
	return sMap, true
}

// SectionKeys returns a section's key names in file order
func (config *INIConfig) SectionKeys(sectionName string) []string {
	section, err := config.file.GetSection(sectionName)
	if err != nil {
		return nil
	}
	return section.KeyStrings()
}

func (config *INIConfig) Set(sectionName string, key string, value string) error {
	section := config.file.Section(sectionName)
	_, err := section.NewKey(key, value)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (config *INIConfig) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := config.file.WriteTo(&buf); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}
