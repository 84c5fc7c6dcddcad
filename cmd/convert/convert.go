// Package convert is a subcommand of the root command. It converts a sysbench results file
// into an xlsx workbook, creating a new workbook or appending to an existing one.
package convert

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sbreport/internal/common"
	"sbreport/internal/config"
	"sbreport/internal/report"
	"sbreport/internal/sysbench"
	"sbreport/internal/util"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const cmdName = "convert"

var examples = []string{
	fmt.Sprintf("  Create a new workbook:                $ %s %s --input sysbench_results.txt --output results.xlsx --mode new", common.AppName, cmdName),
	fmt.Sprintf("  Add a run to an existing workbook:    $ %s %s --input sysbench_results.txt --output results.xlsx --mode append", common.AppName, cmdName),
	fmt.Sprintf("  Also write json and text copies:      $ %s %s --input sysbench_results.txt --output results.xlsx --mode new --format xlsx,json,txt", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Convert sysbench results into an xlsx workbook",
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
	flagOutput string
	flagMode   string
	flagFormat []string
)

var formatOptions = []string{report.FormatAll, report.FormatXlsx, report.FormatJson, report.FormatYaml, report.FormatTxt}

func init() {
	Cmd.Flags().StringVar(&flagInput, common.FlagInputName, "", "")
	Cmd.Flags().StringVar(&flagOutput, common.FlagOutputName, "", "")
	Cmd.Flags().StringVar(&flagMode, common.FlagModeName, "", "")
	Cmd.Flags().StringSliceVar(&flagFormat, common.FlagFormatName, []string{report.FormatXlsx}, "")

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	var groups []common.FlagGroup
	flags := []common.Flag{
		{
			Name: common.FlagInputName,
			Help: "sysbench results text file",
		},
		{
			Name: common.FlagOutputName,
			Help: "xlsx workbook to write, other formats are written next to it",
		},
		{
			Name: common.FlagModeName,
			Help: fmt.Sprintf("'%s' to create a new workbook or '%s' to add to an existing one", report.ModeNameNew, report.ModeNameAppend),
		},
		{
			Name: common.FlagFormatName,
			Help: fmt.Sprintf("choose output format(s) from: %s", strings.Join(formatOptions, ", ")),
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Options",
		Flags:     flags,
	})
	return groups
}

// applyConfig fills flags that weren't set on the command line from the run configuration
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed(common.FlagInputName) && cfg.Input != "" {
		flagInput = cfg.Input
	}
	if !cmd.Flags().Changed(common.FlagOutputName) && cfg.Output != "" {
		flagOutput = cfg.Output
	}
	if !cmd.Flags().Changed(common.FlagModeName) && cfg.Mode != "" {
		flagMode = cfg.Mode
	}
	if !cmd.Flags().Changed(common.FlagFormatName) && len(cfg.Formats) > 0 {
		flagFormat = cfg.Formats
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	applyConfig(cmd, common.GetAppContext(cmd).Config)
	if err := validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func validate() error {
	var err error
	// prompt for missing values when attached to a terminal
	if flagInput, err = common.PromptIfEmpty(flagInput, common.FlagInputName, "Enter the path of the Sysbench results text file"); err != nil {
		return err
	}
	if flagOutput, err = common.PromptIfEmpty(flagOutput, common.FlagOutputName, "Enter the desired path for the output Excel file"); err != nil {
		return err
	}
	if flagMode, err = common.PromptIfEmpty(flagMode, common.FlagModeName, fmt.Sprintf("Enter '%s' to create a new Excel file or '%s' to update the existing Excel file", report.ModeNameNew, report.ModeNameAppend)); err != nil {
		return err
	}
	if _, err = report.ParseMode(flagMode); err != nil {
		return err
	}
	for _, format := range flagFormat {
		if !slices.Contains(formatOptions, format) {
			return fmt.Errorf("format options are: %s", strings.Join(formatOptions, ", "))
		}
	}
	if flagInput, err = util.AbsPath(flagInput); err != nil {
		return err
	}
	exists, err := util.FileExists(flagInput)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("input file %s does not exist", flagInput)
	}
	if flagOutput, err = util.AbsPath(flagOutput); err != nil {
		return err
	}
	outputDir := filepath.Dir(flagOutput)
	exists, err = util.DirectoryExists(outputDir)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("output directory %s does not exist", outputDir)
	}
	return nil
}

// formalizeOutputFormat expands "all" and removes duplicates, the workbook comes first
func formalizeOutputFormat(outputFormat []string) []string {
	result := []string{}
	for _, format := range outputFormat {
		if format == report.FormatAll {
			return []string{report.FormatXlsx, report.FormatJson, report.FormatYaml, report.FormatTxt}
		}
		if !slices.Contains(result, format) {
			result = append(result, format)
		}
	}
	slices.SortStableFunc(result, func(a, b string) int {
		if a == report.FormatXlsx && b != report.FormatXlsx {
			return -1
		}
		if b == report.FormatXlsx && a != report.FormatXlsx {
			return 1
		}
		return 0
	})
	return result
}

func runCmd(cmd *cobra.Command, args []string) error {
	mode, err := report.ParseMode(flagMode)
	if err != nil {
		return err
	}
	err = Convert(flagInput, flagOutput, mode, formalizeOutputFormat(flagFormat), cmd.OutOrStdout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Error(err.Error())
		cmd.SilenceUsage = true
	}
	return err
}

// Convert parses the results file at input and writes the report in each of formats.
// The workbook is written to output, other formats replace output's extension.
func Convert(input string, output string, mode report.Mode, formats []string, out io.Writer) error {
	rep, err := sysbench.ParseFile(input)
	if err != nil {
		return err
	}
	slog.Info("parsed sysbench results", slog.String("input", input), slog.Int("categories", len(rep.Categories)))
	for _, format := range formats {
		if format == report.FormatXlsx {
			if _, err := report.WriteXlsx(rep, output, mode, out); err != nil {
				return err
			}
			continue
		}
		reportBytes, err := report.Create(format, rep)
		if err != nil {
			return err
		}
		path := util.ReplaceExtension(output, format)
		if path == input {
			return fmt.Errorf("%s report would overwrite the input file %s", format, input)
		}
		if err := os.WriteFile(path, reportBytes, 0644); err != nil { // #nosec G306
			return fmt.Errorf("failed to write %s report: %w", format, err)
		}
		slog.Info("wrote report", slog.String("format", format), slog.String("path", path))
		fmt.Fprintf(out, "Wrote %s (%s)\n", path, humanize.Bytes(uint64(len(reportBytes))))
	}
	return nil
}
