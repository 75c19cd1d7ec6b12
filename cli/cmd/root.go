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
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/cortexlabs/medseg/pkg/lib/errors"
)

var _localDir string

var _flagDebug bool

func init() {
	homeDir, err := homedir.Dir()
	if err != nil {
		errors.Exit(err)
	}

	_localDir = filepath.Join(homeDir, ".medseg")
	if err := os.MkdirAll(_localDir, os.ModePerm); err != nil {
		errors.Exit(err)
	}

	cobra.EnablePrefixMatching = true
}

var _rootCmd = &cobra.Command{
	Use:   "medseg",
	Short: "validate and inspect segmentation pipeline configurations",
	Long:  `Validate and inspect segmentation pipeline configurations`,
}

func Execute() {
	defer errors.RecoverAndExit()

	cobra.EnableCommandSorting = false

	_rootCmd.PersistentFlags().BoolVar(&_flagDebug, "debug", false, "print debug output")
	_rootCmd.PersistentFlags().SortFlags = false

	_rootCmd.AddCommand(_validateCmd)
	_rootCmd.AddCommand(_describeCmd)
	_rootCmd.AddCommand(_exportCmd)
	_rootCmd.AddCommand(_versionCmd)

	_rootCmd.Execute()
}
