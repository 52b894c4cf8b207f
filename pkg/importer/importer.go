// Package importer reads tabular enrollment files (CSV or Excel) into
// header-keyed rows for the bulk import path.
package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for anything other than .csv or .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format, use CSV or Excel")

// Read parses the uploaded file into rows keyed by the header row. The
// format is picked from the file name extension.
func Read(fileName string, r io.Reader) ([]string, []map[string]string, error) {
	name := strings.ToLower(fileName)

	switch {
	case strings.HasSuffix(name, ".csv"):
		return readCSV(r)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return readExcel(r)
	default:
		return nil, nil, ErrUnsupportedFormat
	}
}

// HasColumns reports whether every required column is present in the header.
func HasColumns(headers []string, required []string) bool {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range required {
		if !present[col] {
			return false
		}
	}
	return true
}

func readCSV(r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows shorter than the header are padded later; don't reject them here.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("file is empty")
	}

	return toRows(records)
}

func readExcel(r io.Reader) ([]string, []map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("file has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("file is empty")
	}

	return toRows(records)
}

func toRows(records [][]string) ([]string, []map[string]string, error) {
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.ToLower(h))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}
