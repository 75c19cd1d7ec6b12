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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/cortexlabs/medseg/pkg/lib/debug"
	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/types/pipelineconfig"
)

var _describeCmd = &cobra.Command{
	Use:   "describe CONFIG_FILE",
	Short: "show the parsed pipeline configuration",
	Long:  `This command renders the parsed sections of a pipeline configuration file, with defaults filled in`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := args[0]

		config, err := pipelineconfig.NewForFile(configPath)
		if err != nil {
			errors.Exit(err, configPath)
		}

		warnUnknownKeys(config)

		if _flagDebug {
			debug.Ppg(config)
			return
		}

		tree := treeprint.New()
		tree.SetValue(filepath.Base(configPath))
		for _, section := range config.Flatten() {
			branch := tree.AddBranch("[" + section.Section + "]")
			for _, kv := range section.KVs {
				branch.AddNode(kv.Key + " = " + kv.Value)
			}
		}
		fmt.Println(tree.String())
	},
}
