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

package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/cortexlabs/yaml"
	"github.com/spf13/cobra"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/types/pipelineconfig"
)

var (
	_flagExportFormat string
	_flagExportOutput string
)

func init() {
	_exportCmd.Flags().StringVarP(&_flagExportFormat, "format", "f", "ini", "output format (ini, yaml, or json)")
	_exportCmd.Flags().StringVarP(&_flagExportOutput, "output", "o", "", "write to a file instead of stdout")
	_exportCmd.Flags().SortFlags = false
}

var _exportCmd = &cobra.Command{
	Use:   "export CONFIG_FILE",
	Short: "re-emit a pipeline configuration",
	Long:  `This command parses a pipeline configuration file and re-emits the validated structure, with defaults filled in`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := args[0]

		config, err := pipelineconfig.NewForFile(configPath)
		if err != nil {
			errors.Exit(err, configPath)
		}

		var out []byte
		switch _flagExportFormat {
		case "ini":
			out, err = config.Serialize()
		case "yaml":
			out, err = yaml.Marshal(config)
		case "json":
			out, err = json.MarshalIndent(config, "", "  ")
		default:
			err = ErrorInvalidExportFormat(_flagExportFormat)
		}
		if err != nil {
			errors.Exit(err, configPath)
		}

		if _flagExportOutput == "" {
			fmt.Println(string(out))
			return
		}
		if err := ioutil.WriteFile(_flagExportOutput, out, os.FileMode(0644)); err != nil {
			errors.Exit(errors.WithStack(err), _flagExportOutput)
		}
	},
}
