package config

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected *Config
		wantErr  bool
	}{
		{
			name: "All fields",
			content: `input: results.txt
output: ~/bench/results.xlsx
mode: append
formats: [json, txt]
`,
			expected: &Config{Input: "results.txt", Output: "~/bench/results.xlsx", Mode: "append", Formats: []string{"json", "txt"}},
		},
		{
			name:     "Partial",
			content:  "mode: new\n",
			expected: &Config{Mode: "new", Formats: []string{}},
		},
		{
			name:    "Unknown field",
			content: "inputs: results.txt\n",
			wantErr: true,
		},
		{
			name:    "Not yaml",
			content: "mode: [new\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	// without a path, a missing default file yields the defaults
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(DefaultFileName, []byte("output: results.xlsx\n"), 0600))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "results.xlsx", cfg.Output)
}
