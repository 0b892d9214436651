package models

// AnswerCode is one of the six survey answer codes
type AnswerCode string

const (
	CodeStronglyAgree    AnswerCode = "SS"  // Sangat Setuju
	CodeAgree            AnswerCode = "S"   // Setuju
	CodeSomewhatAgree    AnswerCode = "CS"  // Cukup Setuju
	CodeSomewhatDisagree AnswerCode = "CTS" // Cukup Tidak Setuju
	CodeDisagree         AnswerCode = "TS"  // Tidak Setuju
	CodeStronglyDisagree AnswerCode = "STS" // Sangat Tidak Setuju
)

// ScaleOrder lists the answer codes from strongest agreement to strongest disagreement
var ScaleOrder = []AnswerCode{
	CodeStronglyAgree,
	CodeAgree,
	CodeSomewhatAgree,
	CodeSomewhatDisagree,
	CodeDisagree,
	CodeStronglyDisagree,
}

// Sentiment is the coarse category derived from an answer code
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// SentimentOrder lists sentiments from positive to negative
var SentimentOrder = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// RawResponseTable is the wide answer table as read from the spreadsheet
type RawResponseTable struct {
	Columns []string   `json:"columns"` // Header row
	Rows    [][]string `json:"rows"`    // Data rows, aligned with Columns
}

// ColumnIndex returns the position of a column, or -1 if absent
func (t *RawResponseTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// LongResponseRecord is one (respondent, question) cell after reshaping.
// Score is zero until the record has been annotated.
type LongResponseRecord struct {
	Row       int        `json:"-"`         // 1-based data row, for error messages only
	Question  string     `json:"question"`  // Question label (column name)
	Code      AnswerCode `json:"code"`      // Answer code
	Score     int        `json:"score"`     // 1-6, higher = stronger agreement
	Sentiment Sentiment  `json:"sentiment"` // Positive / Neutral / Negative
}

// Scored reports whether the record carries a score
func (r LongResponseRecord) Scored() bool {
	return r.Score > 0
}
