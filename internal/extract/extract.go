// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package extract provides helper functions for splitting benchmark output into sections
// and extracting named values from each section with regular expressions.
package extract

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// NotFound is the value recorded for a field whose pattern did not match.
const NotFound = "N/A"

// SplitSections divides output into the text blocks found between occurrences of delimiter.
// Sections are returned in their original order and are not trimmed.
func SplitSections(output string, delimiter string) []string {
	return strings.Split(output, delimiter)
}

// FieldRule associates a field name with the pattern used to find its value.
// The value is the first capture group of the first match.
type FieldRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// NewFieldRule compiles regex and returns the rule. It panics if regex is invalid,
// rules are package-level definitions.
func NewFieldRule(name string, regex string) FieldRule {
	return FieldRule{Name: name, Pattern: regexp.MustCompile(regex)}
}

// RuleSet is an ordered list of field rules.
type RuleSet []FieldRule

// Names returns the field names in rule order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for _, rule := range rs {
		names = append(names, rule.Name)
	}
	return names
}

// match is the outcome of applying one rule to a section
type match struct {
	value string
	found bool
}

func (m match) String() string {
	if !m.found {
		return NotFound
	}
	return m.value
}

func matchRule(section string, rule FieldRule) match {
	submatch := rule.Pattern.FindStringSubmatch(section)
	if len(submatch) > 1 {
		return match{value: submatch[1], found: true}
	}
	return match{}
}

// Field is a named value extracted from a section.
type Field struct {
	Name  string
	Value string
}

// Record holds the fields extracted from one section, in rule order.
type Record []Field

// ExtractFields applies every rule in rules to section and returns one field per rule.
// Rules are evaluated independently against the whole section text. A rule that
// doesn't match yields NotFound.
func ExtractFields(section string, rules RuleSet) Record {
	record := make(Record, 0, len(rules))
	missing := 0
	for _, rule := range rules {
		m := matchRule(section, rule)
		if !m.found {
			missing++
		}
		record = append(record, Field{Name: rule.Name, Value: m.String()})
	}
	if missing > 0 {
		slog.Debug("fields not found in section", slog.Int("missing", missing), slog.Int("rules", len(rules)))
	}
	return record
}

// Get returns the value of the named field and whether the record has it.
func (r Record) Get(name string) (string, bool) {
	for _, field := range r {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Names returns the field names in record order.
func (r Record) Names() []string {
	names := make([]string, 0, len(r))
	for _, field := range r {
		names = append(names, field.Name)
	}
	return names
}

// Sorted returns a copy of the record ordered lexicographically by field name.
func (r Record) Sorted() Record {
	sorted := make(Record, len(r))
	copy(sorted, r)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Map returns the record as a map from field name to value.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, field := range r {
		m[field.Name] = field.Value
	}
	return m
}
