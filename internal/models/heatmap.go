package models

// HeatmapMatrix is a labeled 2-D grid for heatmap rendering.
// Values[i][j] belongs to RowLabels[i] and ColumnLabels[j].
type HeatmapMatrix struct {
	RowLabels    []string    `json:"row_labels"`    // e.g. ["Score"]
	ColumnLabels []string    `json:"column_labels"` // Question labels
	Values       [][]float64 `json:"values"`
	MinValue     float64     `json:"min_value"`
	MaxValue     float64     `json:"max_value"`
	Metric       string      `json:"metric"` // "mean_score"
}

// Cell returns the value at a row and column label
func (m HeatmapMatrix) Cell(row, column string) (float64, bool) {
	ri, ci := -1, -1
	for i, r := range m.RowLabels {
		if r == row {
			ri = i
			break
		}
	}
	for j, c := range m.ColumnLabels {
		if c == column {
			ci = j
			break
		}
	}
	if ri < 0 || ci < 0 || ri >= len(m.Values) || ci >= len(m.Values[ri]) {
		return 0, false
	}
	return m.Values[ri][ci], true
}
