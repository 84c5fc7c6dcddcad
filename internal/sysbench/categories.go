package sysbench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"sbreport/internal/extract"

	mapset "github.com/deckarep/golang-set/v2"
)

// category names, also used as the block labels in the workbook
const (
	CategoryCPU           = "CPU"
	CategoryMemory        = "Memory"
	CategoryFileIOSeqWr   = "FileIO_seqwr"
	CategoryFileIOSeqRewr = "FileIO_seqrewr"
	CategoryFileIOSeqRd   = "FileIO_seqrd"
	CategoryFileIORndRd   = "FileIO_rndrd"
	CategoryFileIORndWr   = "FileIO_rndwr"
	CategoryFileIORndRw   = "FileIO_rndrw"
)

// MetadataName is the key of the system metadata record in serialized reports.
const MetadataName = "Additional_Info"

// CategoryNames lists the benchmark categories in report order.
var CategoryNames = []string{
	CategoryCPU,
	CategoryMemory,
	CategoryFileIOSeqWr,
	CategoryFileIOSeqRewr,
	CategoryFileIOSeqRd,
	CategoryFileIORndRd,
	CategoryFileIORndWr,
	CategoryFileIORndRw,
}

// fields shared by every benchmark run summary
func commonRules() extract.RuleSet {
	return extract.RuleSet{
		extract.NewFieldRule("Total_time", `total time:\s+([\d.]+)s`),
		extract.NewFieldRule("Total_number_of_events", `total number of events:\s+([\d.]+)`),
		extract.NewFieldRule("Latency_min", `min:\s+([\d.]+)`),
		extract.NewFieldRule("Latency_avg", `avg:\s+([\d.]+)`),
		extract.NewFieldRule("Latency_max", `max:\s+([\d.]+)`),
		extract.NewFieldRule("Latency_95th_percentile", `95th percentile:\s+([\d.]+)`),
		extract.NewFieldRule("Latency_sum", `sum:\s+([\d.]+)`),
		extract.NewFieldRule("Events_avg", `events \(avg/stddev\):\s+([\d.]+)/`),
		extract.NewFieldRule("Execution_time_avg", `execution time \(avg/stddev\):\s+([\d.]+)/`),
	}
}

var commandRule = extract.NewFieldRule("Command", `Command: (.*)`)

// MetadataRules extract the host description written ahead of the first benchmark.
var MetadataRules = extract.RuleSet{
	extract.NewFieldRule("Date_Time", `Date and Time:\s+(.*)`),
	extract.NewFieldRule("Host_Name", `Host Name:\s+(.*)`),
	extract.NewFieldRule("System_Architecture", `System Architecture:\s+(.*)`),
	extract.NewFieldRule("Kernel_Version", `Kernel Version:\s+(.*)`),
	extract.NewFieldRule("Distribution_Info", `Distribution Info:\s+(.*)`),
	extract.NewFieldRule("CPU_Info", `CPU Info:\s+(.*)`),
	extract.NewFieldRule("Total_Memory", `Total Memory:\s+(.*)`),
	extract.NewFieldRule("Total_Swap_Space", `Total Swap Space:\s+(.*)`),
}

// CPURules extract the results of a sysbench cpu run.
var CPURules = append(extract.RuleSet{
	commandRule,
	extract.NewFieldRule("Events_per_second", `events per second:\s+([\d.]+)`),
}, commonRules()...)

// MemoryRules extract the results of a sysbench memory run.
var MemoryRules = append(extract.RuleSet{
	commandRule,
	extract.NewFieldRule("Total_operations", `Total operations:\s+([\d.]+)`),
	extract.NewFieldRule("Operations_per_second", `\( *([\d.]+) per second\)`),
	extract.NewFieldRule("MiB_transferred", `([\d.]+) MiB transferred`),
	extract.NewFieldRule("MiB_per_sec", `MiB transferred \(([\d.]+)`),
}, commonRules()...)

// FileIORules extract the results of a sysbench fileio run. The same rules apply to
// every test mode.
var FileIORules = append(extract.RuleSet{
	commandRule,
	extract.NewFieldRule("Reads_per_second", `reads/s:\s+([\d.]+)`),
	extract.NewFieldRule("Writes_per_second", `writes/s:\s+([\d.]+)`),
	extract.NewFieldRule("Fsyncs_per_second", `fsyncs/s:\s+([\d.]+)`),
	extract.NewFieldRule("Throughput_read", `read, MiB/s:\s+([\d.]+)`),
	extract.NewFieldRule("Throughput_write", `written, MiB/s:\s+([\d.]+)`),
}, commonRules()...)

// rules per category
var categoryRules = map[string]extract.RuleSet{
	CategoryCPU:           CPURules,
	CategoryMemory:        MemoryRules,
	CategoryFileIOSeqWr:   FileIORules,
	CategoryFileIOSeqRewr: FileIORules,
	CategoryFileIOSeqRd:   FileIORules,
	CategoryFileIORndRd:   FileIORules,
	CategoryFileIORndWr:   FileIORules,
	CategoryFileIORndRw:   FileIORules,
}

// RulesFor returns the rule set used for the named category, or nil for an unknown category.
func RulesFor(category string) extract.RuleSet {
	return categoryRules[category]
}

var latencyMetrics = []string{"Latency_min", "Latency_avg", "Latency_max", "Latency_95th_percentile", "Latency_sum"}

func fileIOHighlights() mapset.Set[string] {
	return mapset.NewSet(append([]string{"Throughput_read", "Throughput_write"}, latencyMetrics...)...)
}

// metrics emphasized in the workbook, per category
var highlights = map[string]mapset.Set[string]{
	CategoryCPU: mapset.NewSet(append([]string{"Total_time", "Total_number_of_events"}, latencyMetrics...)...),
	CategoryMemory: mapset.NewSet(append([]string{"Total_operations", "Operations_per_second", "MiB_transferred",
		"MiB_per_sec", "Total_time", "Total_number_of_events"}, latencyMetrics...)...),
	CategoryFileIOSeqWr:   fileIOHighlights(),
	CategoryFileIOSeqRewr: fileIOHighlights(),
	CategoryFileIOSeqRd:   fileIOHighlights(),
	CategoryFileIORndRd:   fileIOHighlights(),
	CategoryFileIORndWr:   fileIOHighlights(),
	CategoryFileIORndRw:   fileIOHighlights(),
}

// IsHighlighted reports whether metric is emphasized in blocks of the named category.
// Unknown categories have no highlighted metrics.
func IsHighlighted(category string, metric string) bool {
	set, ok := highlights[category]
	if !ok {
		return false
	}
	return set.Contains(metric)
}
