// Package chart converts derived survey views into chart encodings that a
// presentation layer can render without further reshaping.
package chart

import "github.com/jengzang/survey-dashboard-go/internal/models"

// Chart names, also used as URL path segments
const (
	NameDistribution = "distribution"
	NameProportion   = "proportion"
	NamePerQuestion  = "per-question"
	NameMeanScores   = "mean-scores"
	NameSentiment    = "sentiment"
	NameHeatmap      = "heatmap"
)

// Names lists every chart in dashboard order
var Names = []string{
	NameDistribution,
	NameProportion,
	NamePerQuestion,
	NameMeanScores,
	NameSentiment,
	NameHeatmap,
}

// Spec is a render-ready chart description
type Spec struct {
	Name        string                `json:"name"`
	ChartType   string                `json:"chart_type"` // bar, pie, stacked_bar, heatmap
	Title       string                `json:"title"`
	XAxis       string                `json:"x_axis,omitempty"`
	YAxis       string                `json:"y_axis,omitempty"`
	Categories  []string              `json:"categories,omitempty"`
	Series      []Series              `json:"series,omitempty"`
	Heatmap     *models.HeatmapMatrix `json:"heatmap,omitempty"`
	ValueFormat string                `json:"value_format"` // d3-style format for data labels
	ShowLegend  bool                  `json:"show_legend"`
}

// Series is one named line of values
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point is a labeled value
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}
