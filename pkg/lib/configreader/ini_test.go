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

	"github.com/stretchr/testify/require"
)

var _testINI = `
# training settings
[dataset]
root_dir  = /data/JSRT
modal_num = 1
train_transform = [ChannelWiseNormalize, RandomCrop]

[network]
net_type = UNet2D
feature_chns = [2, 8, 32, 48, 64]
`

func TestReadINIBytes(t *testing.T) {
	config, err := ReadINIBytes([]byte(_testINI), "config.ini")
	require.NoError(t, err)

	require.Equal(t, []string{"dataset", "network"}, config.SectionNames())
	require.True(t, config.HasSection("dataset"))
	require.False(t, config.HasSection("training"))

	strMap, ok := config.Section("dataset")
	require.True(t, ok)
	require.Equal(t, map[string]string{
		"root_dir":        "/data/JSRT",
		"modal_num":       "1",
		"train_transform": "[ChannelWiseNormalize, RandomCrop]",
	}, strMap)

	require.Equal(t, []string{"root_dir", "modal_num", "train_transform"}, config.SectionKeys("dataset"))

	_, ok = config.Section("training")
	require.False(t, ok)
}

func TestReadINIBytesInvalid(t *testing.T) {
	_, err := ReadINIBytes([]byte("[unclosed\nkey = value\n"), "config.ini")
	require.Error(t, err)
}

func TestINIRoundTrip(t *testing.T) {
	config, err := ReadINIBytes([]byte(_testINI), "config.ini")
	require.NoError(t, err)

	serialized, err := config.Serialize()
	require.NoError(t, err)

	reparsed, err := ReadINIBytes(serialized, "config.ini")
	require.NoError(t, err)

	require.Equal(t, config.SectionNames(), reparsed.SectionNames())
	for _, sectionName := range config.SectionNames() {
		expected, _ := config.Section(sectionName)
		actual, _ := reparsed.Section(sectionName)
		require.Equal(t, expected, actual, sectionName)
	}
}

func TestINIConfigSet(t *testing.T) {
	config := NewINIConfig("generated.ini")
	require.NoError(t, config.Set("dataset", "root_dir", "/data"))
	require.NoError(t, config.Set("dataset", "modal_num", "1"))
	require.NoError(t, config.Set("network", "net_type", "UNet2D"))

	strMap, ok := config.Section("dataset")
	require.True(t, ok)
	require.Equal(t, "/data", strMap["root_dir"])

	serialized, err := config.Serialize()
	require.NoError(t, err)
	require.Contains(t, string(serialized), "[dataset]")
	require.Contains(t, string(serialized), "[network]")
}
