/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for dirugim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dirugim/cmd/convert"
	"bennypowers.dev/dirugim/cmd/generate"
	"bennypowers.dev/dirugim/cmd/info"
	"bennypowers.dev/dirugim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "dirugim",
	Short: "Parse and work with PrefLib preference data",
	Long: `dirugim parses PrefLib preference data files, normalizes them into
canonical JSON documents, and converts rankings into DASS decision
matrices. It also generates synthetic ranking datasets with a
controlled level of expert agreement.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("outdir", "", `Directory for written documents (default "data")`)
	_ = viper.BindPFlag("outdir", rootCmd.PersistentFlags().Lookup("outdir"))
	viper.SetEnvPrefix("dirugim")
	viper.AutomaticEnv()

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(info.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
