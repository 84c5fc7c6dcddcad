package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"sbreport/internal/extract"
	"sbreport/internal/sysbench"
	"sbreport/internal/util"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	// XlsxSheetName is the name of the sheet created for a new workbook
	XlsxSheetName = "Sysbench Results"
	// XlsxHighlightColor fills the rows of highlighted metrics
	XlsxHighlightColor = "FFFF99"
	// XlsxAppendOffset is the distance from the last occupied row of an existing
	// sheet to the first row of an appended report
	XlsxAppendOffset = 2
)

const metricHeader = "Metric"

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

// cellStyle is the combination of style attributes the writer applies to a cell
type cellStyle struct {
	bold bool
	fill bool
	wrap bool
}

type xlsxSheet struct {
	f      *excelize.File
	name   string
	styles map[cellStyle]int
}

func newXlsxSheet(f *excelize.File, name string) *xlsxSheet {
	return &xlsxSheet{f: f, name: name, styles: make(map[cellStyle]int)}
}

func (s *xlsxSheet) styleID(cs cellStyle) (int, error) {
	if id, ok := s.styles[cs]; ok {
		return id, nil
	}
	style := &excelize.Style{}
	if cs.bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if cs.fill {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{XlsxHighlightColor}, Pattern: 1}
	}
	if cs.wrap {
		style.Alignment = &excelize.Alignment{WrapText: true}
	}
	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	s.styles[cs] = id
	return id, nil
}

// setRow writes values starting in column A of row, styling each cell with the style at
// the same index
func (s *xlsxSheet) setRow(row int, values []string, styles []cellStyle) error {
	for i, value := range values {
		cell := cellName(i+1, row)
		if err := s.f.SetCellValue(s.name, cell, value); err != nil {
			return err
		}
		if i >= len(styles) || styles[i] == (cellStyle{}) {
			continue
		}
		id, err := s.styleID(styles[i])
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(s.name, cell, cell, id); err != nil {
			return err
		}
	}
	return nil
}

// writeBlock writes the header and sorted metric rows of one category starting at row
// and returns the row following the block
func (s *xlsxSheet) writeBlock(row int, category string, record extract.Record) (int, error) {
	header := cellStyle{bold: true}
	if err := s.setRow(row, []string{metricHeader, category}, []cellStyle{header, header}); err != nil {
		return row, err
	}
	row++
	for i, field := range record.Sorted() {
		highlighted := sysbench.IsHighlighted(category, field.Name)
		nameStyle := cellStyle{bold: true, fill: highlighted, wrap: i == 0}
		valueStyle := cellStyle{bold: highlighted, fill: highlighted, wrap: i == 0}
		if err := s.setRow(row, []string{field.Name, field.Value}, []cellStyle{nameStyle, valueStyle}); err != nil {
			return row, err
		}
		row++
	}
	return row, nil
}

// emboldenColumnA makes the metric names of rows written by earlier runs bold, keeping the
// rest of their style
func (s *xlsxSheet) emboldenColumnA(lastRow int) error {
	for row := 1; row <= lastRow; row++ {
		cell := cellName(1, row)
		value, err := s.f.GetCellValue(s.name, cell)
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}
		id, err := s.f.GetCellStyle(s.name, cell)
		if err != nil {
			return err
		}
		style, err := s.f.GetStyle(id)
		if err != nil {
			return err
		}
		if style.Font != nil && style.Font.Bold {
			continue
		}
		if style.Font == nil {
			style.Font = &excelize.Font{}
		}
		style.Font.Bold = true
		boldID, err := s.f.NewStyle(style)
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(s.name, cell, cell, boldID); err != nil {
			return err
		}
	}
	return nil
}

// resizeColumns sets every column's width to its longest value plus two
func (s *xlsxSheet) resizeColumns() error {
	rows, err := s.f.GetRows(s.name)
	if err != nil {
		return err
	}
	var widths []int
	for _, row := range rows {
		for col, value := range row {
			if col >= len(widths) {
				widths = append(widths, make([]int, col-len(widths)+1)...)
			}
			widths[col] = max(widths[col], utf8.RuneCountInString(value))
		}
	}
	for col, width := range widths {
		columnName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := s.f.SetColWidth(s.name, columnName, columnName, min(float64(width+2), excelize.MaxColumnWidth)); err != nil {
			return err
		}
	}
	return nil
}

// lastRow returns the number of the last row holding any value
func (s *xlsxSheet) lastRow() (int, error) {
	rows, err := s.f.GetRows(s.name)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// WriteXlsx writes the report to the workbook at path. ModeCreate starts a new workbook,
// ModeAppend adds the report below the rows of the active sheet of an existing workbook,
// leaving the existing values in place. ModeAppend falls back to ModeCreate when there is
// no workbook at path. A confirmation is written to msgs and the effective mode is
// returned.
func WriteXlsx(rep *sysbench.Report, path string, mode Mode, msgs io.Writer) (Mode, error) {
	exists, err := util.FileExists(path)
	if err != nil {
		return mode, err
	}
	if mode == ModeAppend && !exists {
		slog.Info("workbook not found, creating a new one", slog.String("path", path))
		mode = ModeCreate
	}
	var f *excelize.File
	var sheet *xlsxSheet
	row := 1
	if mode == ModeCreate {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", XlsxSheetName); err != nil {
			_ = f.Close()
			return mode, err
		}
		sheet = newXlsxSheet(f, XlsxSheetName)
	} else {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return mode, errors.Wrapf(err, "failed to open workbook %s", path)
		}
		sheet = newXlsxSheet(f, f.GetSheetName(f.GetActiveSheetIndex()))
		last, err := sheet.lastRow()
		if err != nil {
			_ = f.Close()
			return mode, errors.Wrapf(err, "failed to read sheet %s", sheet.name)
		}
		if last > 0 {
			row = last + XlsxAppendOffset
		}
		slog.Debug("appending to workbook", slog.String("sheet", sheet.name), slog.Int("lastRow", last), slog.Int("startRow", row))
	}
	defer f.Close()

	firstRow := row
	for _, category := range rep.Categories {
		row, err = sheet.writeBlock(row, category.Name, category.Record)
		if err != nil {
			return mode, errors.Wrapf(err, "failed to write %s table", category.Name)
		}
	}
	if err := sheet.emboldenColumnA(firstRow - 1); err != nil {
		return mode, errors.Wrap(err, "failed to style metric names")
	}

	row++ // separator
	if err := sheet.setRow(row, []string{additionalInfoTitle}, nil); err != nil {
		return mode, errors.Wrap(err, "failed to write additional info")
	}
	row++
	for _, field := range rep.Metadata {
		if err := sheet.setRow(row, []string{field.Name, field.Value}, nil); err != nil {
			return mode, errors.Wrap(err, "failed to write additional info")
		}
		row++
	}

	if err := sheet.resizeColumns(); err != nil {
		return mode, errors.Wrap(err, "failed to resize columns")
	}

	if err := f.SaveAs(path); err != nil {
		return mode, errors.Wrapf(err, "failed to save workbook %s", path)
	}
	if info, err := os.Stat(path); err == nil {
		slog.Info("saved workbook", slog.String("path", path), slog.String("mode", mode.String()),
			slog.Int("lastRow", row-1), slog.String("size", humanize.Bytes(uint64(info.Size())))) // #nosec G115
	}
	if mode == ModeCreate {
		fmt.Fprintf(msgs, "The results are saved in %s\n", path)
	} else {
		fmt.Fprintf(msgs, "The results are appended to %s\n", path)
	}
	return mode, nil
}
