package aggregator

import (
	"strings"

	"github.com/jengzang/survey-dashboard-go/internal/models"
	"golang.org/x/text/unicode/norm"
)

type codeEntry struct {
	score     int
	sentiment models.Sentiment
}

// lookup is the fixed code table. Kept as a switch so it cannot be mutated.
func lookup(code models.AnswerCode) (codeEntry, bool) {
	switch code {
	case models.CodeStronglyAgree:
		return codeEntry{6, models.SentimentPositive}, true
	case models.CodeAgree:
		return codeEntry{5, models.SentimentPositive}, true
	case models.CodeSomewhatAgree:
		return codeEntry{4, models.SentimentNeutral}, true
	case models.CodeSomewhatDisagree:
		return codeEntry{3, models.SentimentNegative}, true
	case models.CodeDisagree:
		return codeEntry{2, models.SentimentNegative}, true
	case models.CodeStronglyDisagree:
		return codeEntry{1, models.SentimentNegative}, true
	}
	return codeEntry{}, false
}

// NormalizeCell applies NFKC normalization, trims and upper-cases a cell value
func NormalizeCell(value string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(value)))
}

// ParseCode normalizes a cell value and reports whether it is a known answer code
func ParseCode(value string) (models.AnswerCode, bool) {
	code := models.AnswerCode(NormalizeCell(value))
	_, ok := lookup(code)
	return code, ok
}

// ScoreOf returns the 1-6 score for a code
func ScoreOf(code models.AnswerCode) (int, bool) {
	e, ok := lookup(code)
	return e.score, ok
}

// SentimentOf returns the sentiment category for a code
func SentimentOf(code models.AnswerCode) (models.Sentiment, bool) {
	e, ok := lookup(code)
	return e.sentiment, ok
}

// scaleRank orders codes by the canonical scale; unknown codes sort last
func scaleRank(code models.AnswerCode) int {
	for i, c := range models.ScaleOrder {
		if c == code {
			return i
		}
	}
	return len(models.ScaleOrder)
}

func sentimentRank(s models.Sentiment) int {
	for i, c := range models.SentimentOrder {
		if c == s {
			return i
		}
	}
	return len(models.SentimentOrder)
}
