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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
	"github.com/cortexlabs/medseg/pkg/lib/logging"
	s "github.com/cortexlabs/medseg/pkg/lib/strings"
	"github.com/cortexlabs/medseg/pkg/types/pipelineconfig"
)

var _validateCmd = &cobra.Command{
	Use:   "validate CONFIG_FILE",
	Short: "validate a pipeline configuration file",
	Long:  `This command parses a pipeline configuration file and checks every section against its schema`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := args[0]

		config, err := pipelineconfig.NewForFile(configPath)
		if err != nil {
			errors.Exit(err, configPath)
		}

		warnUnknownKeys(config)

		hash, err := config.Hash()
		if err != nil {
			errors.Exit(err, configPath)
		}

		fmt.Println(color.GreenString("✓") + " " + configPath + " is valid")
		fmt.Println("config hash: " + hash)
	},
}

func warnUnknownKeys(config *pipelineconfig.Config) {
	log := logging.GetLogger()
	for _, section := range config.Flatten() {
		if keys, ok := config.UnknownKeys[section.Section]; ok {
			log.Warnf("section [%s] contains unrecognized keys %s (ignored)", section.Section, s.UserStrs(keys))
		}
	}
}
