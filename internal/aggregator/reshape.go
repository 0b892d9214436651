package aggregator

import (
	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// ReshapeToLong melts the wide table into one record per (row, question) cell.
// The identifier column is dropped; records are emitted row by row, columns left to right.
func ReshapeToLong(raw *models.RawResponseTable, identifierColumn string) ([]models.LongResponseRecord, error) {
	idIdx, err := checkSchema(raw, identifierColumn)
	if err != nil {
		return nil, err
	}

	records := make([]models.LongResponseRecord, 0, len(raw.Rows)*(len(raw.Columns)-1))
	for r, row := range raw.Rows {
		for c, label := range raw.Columns {
			if c == idIdx {
				continue
			}
			records = append(records, models.LongResponseRecord{
				Row:      r + 1,
				Question: label,
				Code:     models.AnswerCode(NormalizeCell(cellAt(row, c))),
			})
		}
	}

	return records, nil
}

// Annotate returns a copy of records with Score and Sentiment filled in.
// An unrecognized code rejects the whole batch.
func Annotate(records []models.LongResponseRecord) ([]models.LongResponseRecord, error) {
	out := make([]models.LongResponseRecord, len(records))
	for i, rec := range records {
		entry, ok := lookup(rec.Code)
		if !ok {
			return nil, &UnknownCodeError{Row: rec.Row, Column: rec.Question, Value: string(rec.Code)}
		}
		rec.Score = entry.score
		rec.Sentiment = entry.sentiment
		out[i] = rec
	}
	return out, nil
}
