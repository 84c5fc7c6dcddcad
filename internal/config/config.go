// Package config loads the optional run configuration file. Values in the file provide
// defaults for the command line flags.
package config

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultFileName is the configuration file read from the working directory when no
// configuration file is specified.
const DefaultFileName = "sbreport.yaml"

// Config represents the run configuration.
type Config struct {
	Input   string   `yaml:"input"`   // sysbench results text file
	Output  string   `yaml:"output"`  // xlsx workbook
	Mode    string   `yaml:"mode"`    // new or append
	Formats []string `yaml:"formats"` // additional output formats written next to the workbook
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Formats: []string{},
	}
}

// Load reads configuration from a file.
// If path is specified, the file must exist. If path is empty, DefaultFileName is read
// when present, otherwise the default configuration is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	name := path
	if name == "" {
		name = DefaultFileName
	}
	data, err := os.ReadFile(name) // #nosec G304
	if err != nil {
		if path == "" && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", name)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", name)
	}
	slog.Info("loaded config file", slog.String("path", name))
	return cfg, nil
}
