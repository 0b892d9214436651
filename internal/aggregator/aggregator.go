// Package aggregator turns a wide survey answer table into the derived
// views behind the dashboard charts. Every function is pure: inputs are
// never modified and every call allocates fresh outputs.
package aggregator

import (
	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// Aggregate validates raw once and computes every derived view.
// On error no partial dashboard is returned.
func Aggregate(raw *models.RawResponseTable, identifierColumn string) (*models.Dashboard, error) {
	records, err := Prepare(raw, identifierColumn)
	if err != nil {
		return nil, err
	}

	freq := CountByCode(records)
	means := MeanScoreByQuestion(records)

	return &models.Dashboard{
		Summary:        Summarize(raw, records),
		Frequency:      freq,
		Proportion:     Proportions(freq),
		QuestionCounts: CountByQuestionAndCode(records),
		MeanScores:     means,
		Sentiment:      CountBySentiment(records),
		Heatmap:        ToHeatmapMatrix(means),
		ScoreSummary:   SummarizeScores(records),
	}, nil
}

// Prepare validates raw, then reshapes and annotates it
func Prepare(raw *models.RawResponseTable, identifierColumn string) ([]models.LongResponseRecord, error) {
	if err := Validate(raw, identifierColumn); err != nil {
		return nil, err
	}

	records, err := ReshapeToLong(raw, identifierColumn)
	if err != nil {
		return nil, err
	}

	return Annotate(records)
}
