// Package loader reads a survey spreadsheet into a RawResponseTable.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jengzang/survey-dashboard-go/internal/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Options controls how a spreadsheet is read
type Options struct {
	Sheet string // Worksheet name for workbooks, first sheet if empty
}

// ReadFile reads a .xlsx/.xlsm workbook or a .csv file
func ReadFile(path string, opts Options) (*models.RawResponseTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, opts.Sheet)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported survey file type %q", ext)
	}
}

// ReadXLSX reads one worksheet of a workbook
func ReadXLSX(r io.Reader, sheet string) (*models.RawResponseTable, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return buildTable(rows)
}

// ReadCSV reads comma-separated data with a header row
func ReadCSV(r io.Reader) (*models.RawResponseTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded in buildTable

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	return buildTable(rows)
}

// buildTable turns raw sheet rows into a table. Blank rows are skipped and
// short rows padded to the header width.
func buildTable(rows [][]string) (*models.RawResponseTable, error) {
	table := &models.RawResponseTable{}
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	table.Columns = make([]string, len(header))
	for i, h := range header {
		table.Columns[i] = normalizeLabel(h)
	}

	width := len(table.Columns)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		if len(row) > width {
			for _, extra := range row[width:] {
				if strings.TrimSpace(extra) != "" {
					return nil, fmt.Errorf("row %d has %d cells but header has %d columns", i+2, len(row), width)
				}
			}
			row = row[:width]
		}

		cells := make([]string, width)
		copy(cells, row)
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

func normalizeLabel(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
