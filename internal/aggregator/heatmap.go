package aggregator

import (
	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// HeatmapRowLabel names the single row of the score heatmap
const HeatmapRowLabel = "Score"

// ToHeatmapMatrix transposes per-question means into a one-row matrix
// with one column per question, in the order given.
func ToHeatmapMatrix(means models.PerQuestionMeanScore) models.HeatmapMatrix {
	matrix := models.HeatmapMatrix{
		RowLabels:    []string{HeatmapRowLabel},
		ColumnLabels: make([]string, 0, len(means)),
		Values:       [][]float64{make([]float64, 0, len(means))},
		Metric:       "mean_score",
	}

	for i, m := range means {
		matrix.ColumnLabels = append(matrix.ColumnLabels, m.Question)
		matrix.Values[0] = append(matrix.Values[0], m.MeanScore)

		if i == 0 || m.MeanScore < matrix.MinValue {
			matrix.MinValue = m.MeanScore
		}
		if i == 0 || m.MeanScore > matrix.MaxValue {
			matrix.MaxValue = m.MeanScore
		}
	}

	return matrix
}
