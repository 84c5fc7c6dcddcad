// Package common defines data structures and functions that are used by multiple
// application commands, e.g., convert and show.
package common

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sbreport/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var AppName = filepath.Base(os.Args[0])

// AppContext represents the application context that can be accessed from all commands.
type AppContext struct {
	Timestamp   string         // Timestamp is the application start time.
	LogFilePath string         // LogFilePath is the path of the log file, empty when not logging to a file.
	Version     string         // Version is the version of the application.
	Debug       bool           // Debug is true when debug logging is enabled.
	Config      *config.Config // Config holds the run configuration loaded from file, or the defaults.
}

type Flag struct {
	Name string
	Help string
}
type FlagGroup struct {
	GroupName string
	Flags     []Flag
}

const (
	FlagInputName  = "input"
	FlagOutputName = "output"
	FlagModeName   = "mode"
	FlagFormatName = "format"
)

// GetAppContext returns the application context stored on the root command
func GetAppContext(cmd *cobra.Command) AppContext {
	root := cmd.Root()
	if root.Context() == nil {
		return AppContext{Config: config.DefaultConfig()}
	}
	appContext, ok := root.Context().Value(AppContext{}).(AppContext)
	if !ok {
		return AppContext{Config: config.DefaultConfig()}
	}
	if appContext.Config == nil {
		appContext.Config = config.DefaultConfig()
	}
	return appContext
}

// UsageFunc returns a usage function that prints the command's flags in groups
func UsageFunc(getFlagGroups func() []FlagGroup) func(cmd *cobra.Command) error {
	return func(cmd *cobra.Command) error {
		cmd.Printf("Usage: %s [flags]\n\n", cmd.CommandPath())
		cmd.Printf("Examples:\n%s\n\n", cmd.Example)
		cmd.Println("Flags:")
		for _, group := range getFlagGroups() {
			cmd.Printf("  %s:\n", group.GroupName)
			for _, flag := range group.Flags {
				flagDefault := ""
				if cmd.Flags().Lookup(flag.Name).DefValue != "" {
					flagDefault = fmt.Sprintf(" (default: %s)", cmd.Flags().Lookup(flag.Name).DefValue)
				}
				cmd.Printf("    --%-20s %s%s\n", flag.Name, flag.Help, flagDefault)
			}
		}
		cmd.Println("\nGlobal Flags:")
		cmd.Root().PersistentFlags().VisitAll(func(pf *pflag.Flag) {
			flagDefault := ""
			if pf.DefValue != "" {
				flagDefault = fmt.Sprintf(" (default: %s)", pf.DefValue)
			}
			cmd.Printf("  --%-20s %s%s\n", pf.Name, pf.Usage, flagDefault)
		})
		return nil
	}
}

// CanPrompt reports whether STDIN is a terminal the user can answer prompts on
func CanPrompt() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115
}

// Prompt writes prompt to out and returns the trimmed line read from in
func Prompt(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprintf(out, "%s: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptIfEmpty returns value when it is set. Otherwise, if STDIN is a terminal, it prompts
// the user for the value. It returns an error naming flagName when no value can be obtained.
func PromptIfEmpty(value string, flagName string, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !CanPrompt() {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	slog.Info("prompting for missing flag", slog.String("flag", flagName))
	answer, err := Prompt(os.Stdin, os.Stderr, prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	return answer, nil
}
