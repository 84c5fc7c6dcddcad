package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"

	"sbreport/internal/sysbench"
)

func createJsonReport(rep *sysbench.Report) (out []byte, err error) {
	type outRecord map[string]string
	type outReport map[string]outRecord
	oReport := make(outReport)
	oReport[sysbench.MetadataName] = rep.Metadata.Map()
	for _, category := range rep.Categories {
		oReport[category.Name] = category.Record.Map()
	}
	return json.MarshalIndent(oReport, "", " ")
}
