package batch

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/fiscal"
	"github.com/teranos/fiscal/internal/util"
	"github.com/xuri/excelize/v2"
)

// Column identifies a Person field in a spreadsheet.
type Column int

const (
	ColGivenName Column = iota
	ColPaternalSurname
	ColMaternalSurname
	ColBirthDate
	ColCity
	ColState
	numColumns
)

// headerNames maps normalized header text to a column
var headerNames = map[string]Column{
	"GIVEN NAME":          ColGivenName,
	"NAME":                ColGivenName,
	"NOMBRE":              ColGivenName,
	"NOMBRES":             ColGivenName,
	"PATERNAL SURNAME":    ColPaternalSurname,
	"APELLIDO PATERNO":    ColPaternalSurname,
	"MATERNAL SURNAME":    ColMaternalSurname,
	"APELLIDO MATERNO":    ColMaternalSurname,
	"BIRTH DATE":          ColBirthDate,
	"FECHA NACIMIENTO":    ColBirthDate,
	"FECHA DE NACIMIENTO": ColBirthDate,
	"CITY":                ColCity,
	"CIUDAD":              ColCity,
	"STATE":               ColState,
	"ESTADO":              ColState,
}

// Row is one input line. Line is 1-based and counts the header.
type Row struct {
	Line   int
	Person fiscal.Person
}

// Options configure reading.
type Options struct {
	Sheet  string // XLSX sheet, empty = first sheet
	Header bool   // first row names the columns
}

// ReadFile reads rows from a .csv or .xlsx file.
func ReadFile(path string, opts Options) ([]Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		return ReadCSV(f, opts)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		return ReadXLSX(f, opts)
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported spreadsheet type %q", ext),
			"use a .csv or .xlsx file",
		)
	}
}

// ReadCSV reads rows from CSV data. Rows may have fewer fields than the header.
func ReadCSV(r io.Reader, opts Options) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV")
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return toRows(records, lines, opts.Header, nil)
}

// ReadXLSX reads rows from a workbook sheet.
func ReadXLSX(f *excelize.File, opts Options) ([]Row, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WithHintf(
			errors.Wrapf(err, "failed to read sheet %q", sheet),
			"available sheets: %s", strings.Join(f.GetSheetList(), ", "),
		)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	// Cells formatted as dates display as e.g. "Dec-40"; their raw value is
	// the Excel serial day number.
	dateCell := func(i, col int) (time.Time, bool) {
		if i >= len(raw) || col >= len(raw[i]) {
			return time.Time{}, false
		}
		serial, err := strconv.ParseFloat(strings.TrimSpace(raw[i][col]), 64)
		if err != nil {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return toRows(records, nil, opts.Header, dateCell)
}

// toRows maps records to people, skipping blank lines. lines holds the source
// line of each record; nil means record i is on line i+1. dateCell, when set,
// supplies a native date for a birth date cell whose text does not parse.
func toRows(records [][]string, lines []int, header bool, dateCell func(i, col int) (time.Time, bool)) ([]Row, error) {
	index := defaultIndex()
	start := 0
	if header && len(records) > 0 {
		var err error
		if index, err = headerIndex(records[0]); err != nil {
			return nil, err
		}
		start = 1
	}

	rows := make([]Row, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		rec := records[i]
		if isBlank(rec) {
			continue
		}
		line := i + 1
		if lines != nil {
			line = lines[i]
		}
		p := toPerson(rec, index)
		if col := index[ColBirthDate]; dateCell != nil && col >= 0 && !p.BirthDate.IsZero() {
			if _, err := fiscal.ParseBirthDate(p.BirthDate.String()); err != nil {
				if t, ok := dateCell(i, col); ok {
					p.BirthDate = fiscal.DateOf(t)
				}
			}
		}
		rows = append(rows, Row{Line: line, Person: p})
	}
	return rows, nil
}

func defaultIndex() [numColumns]int {
	var index [numColumns]int
	for c := range index {
		index[c] = c
	}
	return index
}

// headerIndex locates each column in a header row; unknown headers are
// ignored, missing optional columns map to -1
func headerIndex(header []string) ([numColumns]int, error) {
	var index [numColumns]int
	for c := range index {
		index[c] = -1
	}
	for i, h := range header {
		if c, ok := headerNames[util.Normalize(h)]; ok && index[c] < 0 {
			index[c] = i
		}
	}

	for _, required := range []struct {
		col  Column
		name string
	}{{ColGivenName, "given_name"}, {ColPaternalSurname, "paternal_surname"}} {
		if index[required.col] < 0 {
			return index, errors.WithHint(
				errors.NewValidationError("header", strings.Join(header, ","), "missing "+required.name+" column"),
				"name the columns given_name, paternal_surname, maternal_surname, birth_date, city, state",
			)
		}
	}
	return index, nil
}

func toPerson(rec []string, index [numColumns]int) fiscal.Person {
	get := func(c Column) string {
		i := index[c]
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	return fiscal.Person{
		GivenName:       get(ColGivenName),
		PaternalSurname: get(ColPaternalSurname),
		MaternalSurname: get(ColMaternalSurname),
		City:            get(ColCity),
		State:           get(ColState),
		BirthDate:       fiscal.DateString(get(ColBirthDate)),
	}
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
