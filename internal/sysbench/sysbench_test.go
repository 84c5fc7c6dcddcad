package sysbench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sbreport/internal/extract"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResultsPath = "testdata/sysbench_results.txt"

func readTestResults(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(testResultsPath)
	require.NoError(t, err)
	return string(content)
}

func TestAggregate(t *testing.T) {
	report, err := Aggregate(readTestResults(t))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, MetadataRules.Names(), report.Metadata.Names())
	hostName, _ := report.Metadata.Get("Host_Name")
	assert.Equal(t, "bench-node-01", hostName)
	cpuInfo, _ := report.Metadata.Get("CPU_Info")
	assert.Equal(t, "Intel(R) Xeon(R) Platinum 8480+", cpuInfo)

	require.Len(t, report.Categories, len(CategoryNames))
	for i, category := range report.Categories {
		assert.Equal(t, CategoryNames[i], category.Name)
		assert.Equal(t, RulesFor(category.Name).Names(), category.Record.Names(), "category %s", category.Name)
	}

	cpu, ok := report.Category(CategoryCPU)
	require.True(t, ok)
	expectedCPU := map[string]string{
		"Command":                 "sysbench cpu --threads=1 --time=10 run",
		"Events_per_second":       "1234.56",
		"Total_time":              "10.0",
		"Total_number_of_events":  "12349",
		"Latency_min":             "0.79",
		"Latency_avg":             "0.81",
		"Latency_max":             "1.52",
		"Latency_95th_percentile": "0.83",
		"Latency_sum":             "9996.41",
		"Events_avg":              "12349.0000",
		"Execution_time_avg":      "9.9964",
	}
	assert.Equal(t, expectedCPU, cpu.Map())

	memory, ok := report.Category(CategoryMemory)
	require.True(t, ok)
	for name, want := range map[string]string{
		"Total_operations":      "61503186",
		"Operations_per_second": "6149558.96",
		"MiB_transferred":       "60061.71",
		"MiB_per_sec":           "6005.43",
	} {
		got, _ := memory.Get(name)
		assert.Equal(t, want, got, name)
	}

	// each fileio mode comes from its own section
	modes := map[string]string{
		CategoryFileIOSeqWr:   "seqwr",
		CategoryFileIOSeqRewr: "seqrewr",
		CategoryFileIOSeqRd:   "seqrd",
		CategoryFileIORndRd:   "rndrd",
		CategoryFileIORndWr:   "rndwr",
		CategoryFileIORndRw:   "rndrw",
	}
	for category, mode := range modes {
		record, ok := report.Category(category)
		require.True(t, ok)
		command, _ := record.Get("Command")
		assert.Equal(t, "sysbench fileio --file-test-mode="+mode+" --time=10 run", command)
	}
	seqrd, _ := report.Category(CategoryFileIOSeqRd)
	throughput, _ := seqrd.Get("Throughput_read")
	assert.Equal(t, "1543.21", throughput)

	_, ok = report.Category("GPU")
	assert.False(t, ok)
}

func TestAggregateMissingField(t *testing.T) {
	raw := strings.Replace(readTestResults(t), "         95th percentile:                        0.83\n", "", 1)
	report, err := Aggregate(raw)
	require.NoError(t, err)
	cpu, _ := report.Category(CategoryCPU)
	value, ok := cpu.Get("Latency_95th_percentile")
	assert.True(t, ok)
	assert.Equal(t, extract.NotFound, value)
	// other categories are unaffected
	memory, _ := report.Category(CategoryMemory)
	value, _ = memory.Get("Latency_95th_percentile")
	assert.Equal(t, "0.00", value)
}

func TestAggregateMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Empty", raw: ""},
		{name: "No delimiters", raw: "Date and Time: now\nevents per second: 1"},
		{name: "Eight sections", raw: strings.Repeat("x"+SectionDelimiter, 7) + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Aggregate(tt.raw)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestAggregateExtraSections(t *testing.T) {
	raw := readTestResults(t) + SectionDelimiter + "\nCommand: trailing\n"
	report, err := Aggregate(raw)
	require.NoError(t, err)
	rndrw, _ := report.Category(CategoryFileIORndRw)
	command, _ := rndrw.Get("Command")
	assert.Equal(t, "sysbench fileio --file-test-mode=rndrw --time=10 run", command)
}

func TestParseFile(t *testing.T) {
	report, err := ParseFile(testResultsPath)
	require.NoError(t, err)
	assert.Len(t, report.Categories, 8)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedInput)
}

func TestIsHighlighted(t *testing.T) {
	tests := []struct {
		category string
		metric   string
		want     bool
	}{
		{CategoryCPU, "Latency_avg", true},
		{CategoryCPU, "Total_time", true},
		{CategoryCPU, "Command", false},
		{CategoryCPU, "Events_per_second", false},
		{CategoryMemory, "MiB_per_sec", true},
		{CategoryMemory, "Events_avg", false},
		{CategoryFileIOSeqWr, "Throughput_write", true},
		{CategoryFileIORndRw, "Latency_95th_percentile", true},
		{CategoryFileIORndRw, "Total_time", false},
		{CategoryFileIORndRd, "Reads_per_second", false},
		{"Unknown", "Latency_avg", false},
	}
	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.metric, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHighlighted(tt.category, tt.metric))
		})
	}
}

func TestAggregate_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genSection := gen.AlphaString()

	properties.Property("nine sections always yield the full key sets", prop.ForAll(
		func(sections []string) bool {
			report, err := Aggregate(strings.Join(sections, SectionDelimiter))
			if err != nil || len(report.Categories) != len(CategoryNames) {
				return false
			}
			if len(report.Metadata) != len(MetadataRules) {
				return false
			}
			for _, category := range report.Categories {
				if len(category.Record) != len(RulesFor(category.Name)) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(NumSections, genSection),
	))

	properties.Property("fewer than nine sections is malformed", prop.ForAll(
		func(n int, section string) bool {
			sections := make([]string, n)
			for i := range sections {
				sections[i] = section
			}
			_, err := Aggregate(strings.Join(sections, SectionDelimiter))
			return err != nil
		},
		gen.IntRange(1, NumSections-1),
		genSection,
	))

	properties.TestingRun(t)
}
