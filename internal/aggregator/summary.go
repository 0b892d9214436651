package aggregator

import (
	"sort"

	"github.com/jengzang/survey-dashboard-go/internal/models"
	"github.com/jengzang/survey-dashboard-go/internal/stats"
)

// SummarizeScores computes score spread and answer entropy per question.
// Unscored records and records with a code outside the scale are ignored;
// questions without scores are omitted.
func SummarizeScores(records []models.LongResponseRecord) models.ScoreSummary {
	scores := make(map[string][]float64)
	codeCounts := make(map[string][]float64)
	for _, rec := range records {
		rank := scaleRank(rec.Code)
		if !rec.Scored() || rank == len(models.ScaleOrder) {
			continue
		}
		scores[rec.Question] = append(scores[rec.Question], float64(rec.Score))

		counts, ok := codeCounts[rec.Question]
		if !ok {
			counts = make([]float64, len(models.ScaleOrder))
			codeCounts[rec.Question] = counts
		}
		counts[rank]++
	}

	questions := make([]string, 0, len(scores))
	for q := range scores {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	summary := make(models.ScoreSummary, 0, len(questions))
	for _, q := range questions {
		values := scores[q]
		summary = append(summary, models.QuestionScoreStats{
			Question:  q,
			Responses: len(values),
			Mean:      stats.Mean(values),
			Median:    stats.Median(values),
			StdDev:    stats.StdDev(values),
			Min:       stats.Min(values),
			Max:       stats.Max(values),
			Entropy:   stats.NormalizedEntropy(codeCounts[q]),
		})
	}
	return summary
}

// Summarize computes headline figures for a validated table and its annotated records
func Summarize(raw *models.RawResponseTable, records []models.LongResponseRecord) models.DashboardSummary {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		if rec.Scored() {
			values = append(values, float64(rec.Score))
		}
	}

	questions := 0
	if len(raw.Columns) > 0 {
		questions = len(raw.Columns) - 1
	}

	return models.DashboardSummary{
		Respondents: len(raw.Rows),
		Questions:   questions,
		Responses:   len(records),
		OverallMean: stats.Mean(values),
	}
}
