package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"
	"strings"
	"testing"

	"sbreport/internal/sysbench"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestCreateJson(t *testing.T) {
	rep := loadTestReport(t)
	out, err := Create(FormatJson, rep)
	require.NoError(t, err)

	var parsed map[string]map[string]string
	require.NoError(t, json.Unmarshal(out, &parsed))
	assert.Len(t, parsed, len(sysbench.CategoryNames)+1)
	assert.Equal(t, "bench-node-01", parsed[sysbench.MetadataName]["Host_Name"])
	assert.Equal(t, "1234.56", parsed[sysbench.CategoryCPU]["Events_per_second"])
	assert.Equal(t, "10.0", parsed[sysbench.CategoryCPU]["Total_time"])
}

func TestCreateYaml(t *testing.T) {
	rep := loadTestReport(t)
	out, err := Create(FormatYaml, rep)
	require.NoError(t, err)

	var parsed yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(out, &parsed))
	require.Len(t, parsed, len(sysbench.CategoryNames)+1)
	assert.Equal(t, sysbench.MetadataName, parsed[0].Key)
	for i, name := range sysbench.CategoryNames {
		assert.Equal(t, name, parsed[i+1].Key)
	}
	// values stay strings
	assert.Regexp(t, `Total_time: ["']10\.0["']`, string(out))
}

func TestCreateText(t *testing.T) {
	rep := loadTestReport(t)
	out, err := Create(FormatTxt, rep)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "Additional Info\n===============\n"))
	assert.Contains(t, text, "CPU\n===\n")
	assert.Regexp(t, `Total_operations:\s+61,503,186\n`, text)
	assert.Regexp(t, `Events_per_second:\s+1234\.56\n`, text)
	assert.Contains(t, text, "Latency_95th_percentile: 0.83\n")
}

func TestCreateUnknownFormat(t *testing.T) {
	rep := loadTestReport(t)
	_, err := Create(FormatXlsx, rep)
	assert.Error(t, err)
	_, err = Create("html", rep)
	assert.Error(t, err)
}

func TestTextValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"12349", "12,349"},
		{"42", "42"},
		{"1234.56", "1234.56"},
		{"N/A", "N/A"},
		{"sysbench cpu run", "sysbench cpu run"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textValue(tt.value))
	}
}
