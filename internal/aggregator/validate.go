package aggregator

import (
	"fmt"
	"strings"

	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// Validate checks the whole table once before any aggregation runs.
// It returns the first problem found, header checks first, then cells in row order.
func Validate(raw *models.RawResponseTable, identifierColumn string) error {
	idIdx, err := checkSchema(raw, identifierColumn)
	if err != nil {
		return err
	}

	if len(raw.Rows) == 0 {
		return &EmptyInputError{}
	}

	for r, row := range raw.Rows {
		for c, label := range raw.Columns {
			if c == idIdx {
				continue
			}
			value := cellAt(row, c)
			if _, ok := ParseCode(value); !ok {
				return &UnknownCodeError{Row: r + 1, Column: label, Value: value}
			}
		}
	}

	return nil
}

// checkSchema validates the header and returns the identifier column index
func checkSchema(raw *models.RawResponseTable, identifierColumn string) (int, error) {
	if raw == nil || len(raw.Columns) == 0 {
		return -1, &SchemaError{Reason: "table has no header row"}
	}

	seen := make(map[string]bool, len(raw.Columns))
	for i, label := range raw.Columns {
		if strings.TrimSpace(label) == "" {
			return -1, &SchemaError{Column: fmt.Sprintf("#%d", i+1), Reason: "blank column label"}
		}
		if seen[label] {
			return -1, &SchemaError{Column: label, Reason: "duplicate column label"}
		}
		seen[label] = true
	}

	idIdx := raw.ColumnIndex(identifierColumn)
	if idIdx < 0 {
		return -1, &SchemaError{Column: identifierColumn, Reason: "identifier column not found"}
	}
	if len(raw.Columns) < 2 {
		return -1, &SchemaError{Column: identifierColumn, Reason: "no question columns besides the identifier"}
	}

	return idIdx, nil
}

// cellAt returns the cell at column c, treating missing trailing cells as blank
func cellAt(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}
