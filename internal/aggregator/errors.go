package aggregator

import (
	"errors"
	"fmt"
)

// SchemaError reports a header problem: missing identifier column,
// no question columns, or a blank/duplicate column label.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error: column %q: %s", e.Column, e.Reason)
}

// UnknownCodeError reports a cell whose value is not one of the six answer codes
type UnknownCodeError struct {
	Row    int // 1-based data row
	Column string
	Value  string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown answer code %q at row %d, column %q", e.Value, e.Row, e.Column)
}

// EmptyInputError reports a table with a header but no data rows
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "empty input: table has no response rows"
}

// IsInputError reports whether err is caused by the input table itself
func IsInputError(err error) bool {
	var schemaErr *SchemaError
	var codeErr *UnknownCodeError
	var emptyErr *EmptyInputError
	return errors.As(err, &schemaErr) || errors.As(err, &codeErr) || errors.As(err, &emptyErr)
}
