// Package sysbench turns the text report written by the sysbench collection script into a
// structured report: system metadata plus one record per benchmark category.
package sysbench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"os"

	"sbreport/internal/extract"

	"github.com/pkg/errors"
)

// SectionDelimiter separates the sections of the collection script's report.
const SectionDelimiter = "---------------------"

// NumSections is the number of sections a report must contain: metadata, CPU, memory and
// six fileio modes.
const NumSections = 9

// ErrMalformedInput is returned when the report does not contain enough sections.
var ErrMalformedInput = errors.New("malformed sysbench report")

// section index of each category; the metadata section is index 0
var sectionIndex = map[string]int{
	CategoryCPU:           1,
	CategoryMemory:        2,
	CategoryFileIOSeqWr:   3,
	CategoryFileIOSeqRewr: 4,
	CategoryFileIOSeqRd:   5,
	CategoryFileIORndRd:   6,
	CategoryFileIORndWr:   7,
	CategoryFileIORndRw:   8,
}

// CategoryResult is the record extracted for one benchmark category.
type CategoryResult struct {
	Name   string
	Record extract.Record
}

// Report is the structured form of one collection run.
type Report struct {
	Metadata   extract.Record
	Categories []CategoryResult // in CategoryNames order
}

// Category returns the record of the named category.
func (r *Report) Category(name string) (extract.Record, bool) {
	for _, category := range r.Categories {
		if category.Name == name {
			return category.Record, true
		}
	}
	return nil, false
}

// Aggregate splits raw into its sections and extracts every category from its fixed
// section. A report with fewer than NumSections sections is rejected as a whole.
// Sections beyond NumSections are ignored.
func Aggregate(raw string) (*Report, error) {
	sections := extract.SplitSections(raw, SectionDelimiter)
	if len(sections) < NumSections {
		return nil, errors.Wrapf(ErrMalformedInput, "expected %d sections, found %d", NumSections, len(sections))
	}
	if len(sections) > NumSections {
		slog.Debug("ignoring extra sections", slog.Int("sections", len(sections)))
	}
	report := &Report{
		Metadata:   extract.ExtractFields(sections[0], MetadataRules),
		Categories: make([]CategoryResult, 0, len(CategoryNames)),
	}
	for _, name := range CategoryNames {
		report.Categories = append(report.Categories, CategoryResult{
			Name:   name,
			Record: extract.ExtractFields(sections[sectionIndex[name]], RulesFor(name)),
		})
	}
	return report, nil
}

// ParseFile reads the report at path and aggregates it.
func ParseFile(path string) (*Report, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sysbench results from %s", path)
	}
	slog.Debug("read sysbench results", slog.String("path", path), slog.Int("bytes", len(content)))
	return Aggregate(string(content))
}
