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
	"fmt"
	"reflect"
	"strings"

	cr "github.com/cortexlabs/medseg/pkg/lib/configreader"
	"github.com/cortexlabs/medseg/pkg/lib/slices"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
)

type KV struct {
	Key   string
	Value string
}

type SectionKVs struct {
	Section string
	KVs     []KV
}

// Flatten renders the typed structure back to ordered sections of key=value
// string pairs, in the canonical key order
func (config *Config) Flatten() []SectionKVs {
	return []SectionKVs{
		{Section: DatasetSectionKey, KVs: config.Dataset.kvs()},
		{Section: NetworkSectionKey, KVs: config.Network.kvs()},
		{Section: TrainingSectionKey, KVs: config.Training.kvs()},
		{Section: TestingSectionKey, KVs: config.Testing.kvs()},
	}
}

// Serialize regenerates the config file text; parsing the result yields an
// identical structure
func (config *Config) Serialize() ([]byte, error) {
	iniConfig := cr.NewINIConfig("")
	for _, section := range config.Flatten() {
		for _, kv := range section.KVs {
			if err := iniConfig.Set(section.Section, kv.Key, kv.Value); err != nil {
				return nil, err
			}
		}
	}
	return iniConfig.Serialize()
}

func (dc *DatasetConfig) kvs() []KV {
	kvs := []KV{
		{"root_dir", formatValue(dc.RootDir)},
		{"train_csv", formatValue(dc.TrainCSV)},
		{"valid_csv", formatValue(dc.ValidCSV)},
		{"test_csv", formatValue(dc.TestCSV)},
		{"modal_num", formatValue(dc.ModalNum)},
		{"tensor_type", formatValue(dc.TensorType)},
		{"train_transform", formatValue(dc.TrainTransform)},
		{"test_transform", formatValue(dc.TestTransform)},
	}

	names := slices.UniqueStrings(append(append([]string{}, dc.TrainTransform...), dc.TestTransform...))
	for _, name := range names {
		if params, ok := dc.TransformParams[name]; ok {
			kvs = append(kvs, paramKVs(params)...)
		}
	}
	return kvs
}

func (nc *NetworkConfig) kvs() []KV {
	return []KV{
		{"net_type", formatValue(nc.NetType)},
		{"in_chns", formatValue(nc.InChns)},
		{"feature_chns", formatValue(nc.FeatureChns)},
		{"dropout", formatValue(nc.Dropout)},
		{"class_num", formatValue(nc.ClassNum)},
		{"bilinear", formatValue(nc.Bilinear)},
	}
}

func (tc *TrainingConfig) kvs() []KV {
	return []KV{
		{"device_name", formatValue(tc.DeviceName)},
		{"batch_size", formatValue(tc.BatchSize)},
		{"loss_type", formatValue(tc.LossType)},
		{"loss_softmax", formatValue(tc.LossSoftmax)},
		{"optimizer", formatValue(tc.Optimizer)},
		{"learning_rate", formatValue(tc.LearningRate)},
		{"momentum", formatValue(tc.Momentum)},
		{"weight_decay", formatValue(tc.WeightDecay)},
		{"lr_milestones", formatValue(tc.LRMilestones)},
		{"lr_gamma", formatValue(tc.LRGamma)},
		{"checkpoint_prefix", formatValue(tc.CheckpointPrefix)},
		{"summary_dir", formatValue(tc.SummaryDir)},
		{"iter_start", formatValue(tc.IterStart)},
		{"iter_max", formatValue(tc.IterMax)},
		{"iter_valid", formatValue(tc.IterValid)},
		{"iter_save", formatValue(tc.IterSave)},
	}
}

func (tc *TestingConfig) kvs() []KV {
	return []KV{
		{"device_name", formatValue(tc.DeviceName)},
		{"checkpoint_name", formatValue(tc.CheckpointName)},
		{"output_dir", formatValue(tc.OutputDir)},
		{"evaluation_mode", formatValue(tc.EvaluationMode)},
		{"test_time_dropout", formatValue(tc.TestTimeDropout)},
		{"mini_batch_size", formatValue(tc.MiniBatchSize)},
		{"mini_patch_input_shape", formatValue(tc.MiniPatchInputShape)},
		{"mini_patch_output_shape", formatValue(tc.MiniPatchOutputShape)},
		{"mini_patch_stride", formatValue(tc.MiniPatchStride)},
		{"label_source", formatValue(tc.LabelSource)},
		{"label_target", formatValue(tc.LabelTarget)},
	}
}

// paramKVs walks a transform's parameter struct in field order, naming keys by
// the json tags
func paramKVs(params TransformParams) []KV {
	structValue := reflect.ValueOf(params).Elem()
	structType := structValue.Type()

	kvs := make([]KV, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		tag, ok := structType.Field(i).Tag.Lookup("json")
		if !ok || tag == "-" {
			continue
		}
		key := strings.Split(tag, ",")[0]
		kvs = append(kvs, KV{key, formatValue(structValue.Field(i).Interface())})
	}
	return kvs
}

// formatValue renders a field back to its config file literal
func formatValue(val interface{}) string {
	switch casted := val.(type) {
	case string:
		return casted
	case bool:
		if casted {
			return "True"
		}
		return "False"
	case int:
		return s.Int(casted)
	case float64:
		return s.Float64(casted)
	case []string:
		return "[" + strings.Join(casted, ", ") + "]"
	case []int:
		strs := make([]string, len(casted))
		for i, elem := range casted {
			strs[i] = s.Int(elem)
		}
		return "[" + strings.Join(strs, ", ") + "]"
	case []float64:
		strs := make([]string, len(casted))
		for i, elem := range casted {
			strs[i] = s.Float64(elem)
		}
		return "[" + strings.Join(strs, ", ") + "]"
	case *string:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case *bool:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case *int:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case *float64:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case *[]int:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case *[]float64:
		if casted == nil {
			return cr.NoneValue
		}
		return formatValue(*casted)
	case fmt.Stringer:
		return casted.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
