package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"sbreport/internal/extract"
	"sbreport/internal/sysbench"

	"gopkg.in/yaml.v2"
)

// yaml keeps the collection order: metadata first, then categories, fields in rule order
func createYamlReport(rep *sysbench.Report) (out []byte, err error) {
	toMapSlice := func(record extract.Record) yaml.MapSlice {
		ms := make(yaml.MapSlice, 0, len(record))
		for _, field := range record {
			ms = append(ms, yaml.MapItem{Key: field.Name, Value: field.Value})
		}
		return ms
	}
	oReport := yaml.MapSlice{{Key: sysbench.MetadataName, Value: toMapSlice(rep.Metadata)}}
	for _, category := range rep.Categories {
		oReport = append(oReport, yaml.MapItem{Key: category.Name, Value: toMapSlice(category.Record)})
	}
	return yaml.Marshal(oReport)
}
