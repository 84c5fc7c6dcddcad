package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strconv"
	"strings"

	"sbreport/internal/extract"
	"sbreport/internal/sysbench"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// title of the metadata table in text output, matches the label used in the workbook
const additionalInfoTitle = "Additional Info"

func createTextReport(rep *sysbench.Report) (out []byte, err error) {
	var sb strings.Builder
	sb.WriteString(renderTextTable(additionalInfoTitle, rep.Metadata))
	for _, category := range rep.Categories {
		sb.WriteString(renderTextTable(category.Name, category.Record))
	}
	out = []byte(sb.String())
	return
}

func renderTextTable(name string, record extract.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", name))
	for i := 0; i < len(name); i++ {
		sb.WriteString("=")
	}
	sb.WriteString("\n")
	// get the longest field name to format the table nicely
	maxFieldNameLen := 0
	for _, field := range record {
		if len(field.Name) > maxFieldNameLen {
			maxFieldNameLen = len(field.Name)
		}
	}
	// print the field names followed by their value
	for _, field := range record {
		sb.WriteString(fmt.Sprintf("%s%-*s %s\n", field.Name, maxFieldNameLen-len(field.Name)+1, ":", textValue(field.Value)))
	}
	sb.WriteString("\n")
	return sb.String()
}

// textValue groups the digits of integer counts, e.g., 61,503,186
func textValue(value string) string {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", intValue)
}
