// Package report provides functions to render a parsed sysbench report in various formats
// such as xlsx, txt, json and yaml.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"

	"sbreport/internal/sysbench"

	"github.com/pkg/errors"
)

const (
	FormatXlsx = "xlsx"
	FormatJson = "json"
	FormatYaml = "yaml"
	FormatTxt  = "txt"
	FormatAll  = "all"
)

// FormatOptions are the formats that can be produced with Create
var FormatOptions = []string{FormatTxt, FormatJson, FormatYaml}

// Mode selects how the xlsx workbook is written.
type Mode int

const (
	// ModeCreate writes a new workbook, replacing any existing file.
	ModeCreate Mode = iota
	// ModeAppend adds the report below the rows of an existing workbook.
	ModeAppend
)

// user-facing mode names
const (
	ModeNameNew    = "new"
	ModeNameAppend = "append"
)

// ErrInvalidMode is returned by ParseMode for names other than "new" and "append".
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode maps a user-facing mode name to a Mode. Surrounding space and case are ignored.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ModeNameNew:
		return ModeCreate, nil
	case ModeNameAppend:
		return ModeAppend, nil
	}
	return ModeCreate, errors.Wrapf(ErrInvalidMode, "%q, please enter '%s' or '%s'", name, ModeNameNew, ModeNameAppend)
}

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "CREATE"
	case ModeAppend:
		return "APPEND"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Create renders the report in the specified format. The xlsx format is written with
// WriteXlsx instead since it may extend an existing workbook.
func Create(format string, rep *sysbench.Report) (out []byte, err error) {
	switch format {
	case FormatTxt:
		return createTextReport(rep)
	case FormatJson:
		return createJsonReport(rep)
	case FormatYaml:
		return createYamlReport(rep)
	}
	return nil, fmt.Errorf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format)
}
