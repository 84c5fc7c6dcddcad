// Package show is a subcommand of the root command. It prints the parsed contents of a
// sysbench results file.
package show

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"sbreport/internal/common"
	"sbreport/internal/report"
	"sbreport/internal/sysbench"

	"github.com/spf13/cobra"
)

const cmdName = "show"

var examples = []string{
	fmt.Sprintf("  Print the parsed results:          $ %s %s --input sysbench_results.txt", common.AppName, cmdName),
	fmt.Sprintf("  Print the parsed results as YAML:  $ %s %s --input sysbench_results.txt --format yaml", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Print the metrics parsed from sysbench results",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagInput  string
	flagFormat string
)

func init() {
	Cmd.Flags().StringVar(&flagInput, common.FlagInputName, "", "")
	Cmd.Flags().StringVar(&flagFormat, common.FlagFormatName, report.FormatTxt, "")

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	flags := []common.Flag{
		{
			Name: common.FlagInputName,
			Help: "sysbench results text file",
		},
		{
			Name: common.FlagFormatName,
			Help: fmt.Sprintf("choose output format from: %s", strings.Join(report.FormatOptions, ", ")),
		},
	}
	return []common.FlagGroup{{GroupName: "Options", Flags: flags}}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed(common.FlagInputName) {
		flagInput = common.GetAppContext(cmd).Config.Input
	}
	var err error
	if flagInput, err = common.PromptIfEmpty(flagInput, common.FlagInputName, "Enter the path of the Sysbench results text file"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if !slices.Contains(report.FormatOptions, flagFormat) {
		err := fmt.Errorf("format options are: %s", strings.Join(report.FormatOptions, ", "))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	rep, err := sysbench.ParseFile(flagInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cmd.SilenceUsage = true
		return err
	}
	out, err := report.Create(flagFormat, rep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cmd.SilenceUsage = true
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
