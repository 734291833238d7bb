package batch

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/teranos/fiscal/errors"
	"github.com/xuri/excelize/v2"
)

// ResultSheet is the sheet name WriteXLSX writes to.
const ResultSheet = "Codes"

var resultHeaders = []string{"line", "name", "code", "rule", "filtered", "state_code", "error"}

func (r Result) record() []string {
	return []string{
		strconv.Itoa(r.Line),
		r.Name,
		r.Code,
		r.Rule,
		strconv.FormatBool(r.Filtered),
		r.StateCode,
		r.Error,
	}
}

// WriteFile writes results to a .csv or .xlsx file, chosen by extension.
func WriteFile(path string, results []Result) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", path)
		}
		if err := WriteCSV(f, results); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return WriteXLSX(path, results)
	default:
		return errors.WithHint(
			errors.Newf("unsupported output type %q", ext),
			"use a .csv or .xlsx file",
		)
	}
}

// WriteCSV writes a header row followed by one record per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeaders); err != nil {
		return errors.Wrap(err, "failed to write CSV")
	}
	for _, r := range results {
		if err := cw.Write(r.record()); err != nil {
			return errors.Wrap(err, "failed to write CSV")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to write CSV")
}

// WriteXLSX writes results to a new workbook with a bold header row.
func WriteXLSX(path string, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultSheet); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}
	if err := f.SetSheetRow(ResultSheet, "A1", &resultHeaders); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}
	last, _ := excelize.CoordinatesToCellName(len(resultHeaders), 1)
	if err := f.SetCellStyle(ResultSheet, "A1", last, style); err != nil {
		return errors.Wrap(err, "failed to style header")
	}

	for i, r := range results {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := r.record()
		if err := f.SetSheetRow(ResultSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", r.Line)
		}
	}
	_ = f.SetColWidth(ResultSheet, "B", "B", 35)
	_ = f.SetColWidth(ResultSheet, "C", "C", 14)
	_ = f.SetColWidth(ResultSheet, "G", "G", 50)

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
