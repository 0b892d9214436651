package chart

import (
	"sort"

	"github.com/jengzang/survey-dashboard-go/internal/models"
	"github.com/jengzang/survey-dashboard-go/internal/stats"
)

// Default palette for series without a fixed color
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Answer codes run green to red along the scale
var codeColors = map[models.AnswerCode]string{
	models.CodeStronglyAgree:    "#15803D",
	models.CodeAgree:            "#4ADE80",
	models.CodeSomewhatAgree:    "#FACC15",
	models.CodeSomewhatDisagree: "#FB923C",
	models.CodeDisagree:         "#F87171",
	models.CodeStronglyDisagree: "#B91C1C",
}

var sentimentColors = map[models.Sentiment]string{
	models.SentimentPositive: "#10B981",
	models.SentimentNeutral:  "#F59E0B",
	models.SentimentNegative: "#EF4444",
}

// BuildAll produces every dashboard chart in display order
func BuildAll(d *models.Dashboard) []Spec {
	return []Spec{
		Distribution(d.Frequency),
		Proportion(d.Proportion),
		PerQuestion(d.QuestionCounts),
		MeanScores(d.MeanScores),
		Sentiment(d.Sentiment),
		Heatmap(d.Heatmap),
	}
}

// Build produces a single chart by name
func Build(name string, d *models.Dashboard) (Spec, bool) {
	switch name {
	case NameDistribution:
		return Distribution(d.Frequency), true
	case NameProportion:
		return Proportion(d.Proportion), true
	case NamePerQuestion:
		return PerQuestion(d.QuestionCounts), true
	case NameMeanScores:
		return MeanScores(d.MeanScores), true
	case NameSentiment:
		return Sentiment(d.Sentiment), true
	case NameHeatmap:
		return Heatmap(d.Heatmap), true
	}
	return Spec{}, false
}

// Distribution is a bar per answer code, in scale order
func Distribution(freq models.AnswerFrequency) Spec {
	points := make([]Point, 0, len(freq))
	categories := make([]string, 0, len(freq))
	for _, c := range freq {
		categories = append(categories, string(c.Code))
		points = append(points, Point{Label: string(c.Code), Value: float64(c.Count), Color: colorForCode(c.Code, len(points))})
	}

	return Spec{
		Name:        NameDistribution,
		ChartType:   "bar",
		Title:       "Answer Distribution",
		XAxis:       "Answer",
		YAxis:       "Count",
		Categories:  categories,
		Series:      []Series{{Name: "Count", Data: points}},
		ValueFormat: "d",
	}
}

// Proportion is a pie of answer shares (0-1), largest slice first
func Proportion(props models.AnswerProportion) Spec {
	points := make([]Point, 0, len(props))
	for _, p := range props {
		points = append(points, Point{Label: string(p.Code), Value: stats.RoundTo(p.Share, 4), Color: colorForCode(p.Code, len(points))})
	}

	return Spec{
		Name:        NameProportion,
		ChartType:   "pie",
		Title:       "Answer Proportion",
		Series:      []Series{{Name: "Share", Data: points}},
		ValueFormat: ".1%",
		ShowLegend:  true,
	}
}

// PerQuestion is a stacked bar with one series per answer code.
// Missing (question, code) pairs are drawn as zero.
func PerQuestion(counts models.PerQuestionAnswerCounts) Spec {
	lookup := make(map[string]map[models.AnswerCode]int)
	codeSet := make(map[models.AnswerCode]bool)
	for _, c := range counts {
		if lookup[c.Question] == nil {
			lookup[c.Question] = make(map[models.AnswerCode]int)
		}
		lookup[c.Question][c.Code] = c.Count
		codeSet[c.Code] = true
	}

	questions := make([]string, 0, len(lookup))
	for q := range lookup {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	series := make([]Series, 0, len(codeSet))
	for _, code := range orderedCodes(codeSet) {
		points := make([]Point, 0, len(questions))
		for _, q := range questions {
			points = append(points, Point{Label: q, Value: float64(lookup[q][code])})
		}
		series = append(series, Series{Name: string(code), Data: points, Color: colorForCode(code, len(series))})
	}

	return Spec{
		Name:        NamePerQuestion,
		ChartType:   "stacked_bar",
		Title:       "Answer Distribution per Question",
		XAxis:       "Question",
		YAxis:       "Count",
		Categories:  questions,
		Series:      series,
		ValueFormat: "d",
		ShowLegend:  true,
	}
}

// MeanScores is a bar per question, labels rounded to two decimals
func MeanScores(means models.PerQuestionMeanScore) Spec {
	points := make([]Point, 0, len(means))
	categories := make([]string, 0, len(means))
	for _, m := range means {
		categories = append(categories, m.Question)
		points = append(points, Point{Label: m.Question, Value: stats.RoundTo(m.MeanScore, 2)})
	}

	return Spec{
		Name:        NameMeanScores,
		ChartType:   "bar",
		Title:       "Mean Score per Question",
		XAxis:       "Question",
		YAxis:       "Score",
		Categories:  categories,
		Series:      []Series{{Name: "Score", Data: points, Color: defaultColors[0]}},
		ValueFormat: ".2f",
	}
}

// Sentiment is a bar per sentiment category
func Sentiment(dist models.SentimentDistribution) Spec {
	points := make([]Point, 0, len(dist))
	categories := make([]string, 0, len(dist))
	for _, s := range dist {
		categories = append(categories, string(s.Sentiment))
		points = append(points, Point{Label: string(s.Sentiment), Value: float64(s.Count), Color: sentimentColors[s.Sentiment]})
	}

	return Spec{
		Name:        NameSentiment,
		ChartType:   "bar",
		Title:       "Positive, Neutral and Negative Answers",
		XAxis:       "Category",
		YAxis:       "Count",
		Categories:  categories,
		Series:      []Series{{Name: "Count", Data: points}},
		ValueFormat: "d",
	}
}

// Heatmap carries the score matrix as-is
func Heatmap(matrix models.HeatmapMatrix) Spec {
	m := matrix
	return Spec{
		Name:        NameHeatmap,
		ChartType:   "heatmap",
		Title:       "Mean Score Heatmap",
		XAxis:       "Question",
		Categories:  matrix.ColumnLabels,
		Heatmap:     &m,
		ValueFormat: ".2f",
	}
}

func colorForCode(code models.AnswerCode, i int) string {
	if c, ok := codeColors[code]; ok {
		return c
	}
	return defaultColors[i%len(defaultColors)]
}

// orderedCodes returns the set in scale order, unknown codes last
func orderedCodes(set map[models.AnswerCode]bool) []models.AnswerCode {
	codes := make([]models.AnswerCode, 0, len(set))
	for _, c := range models.ScaleOrder {
		if set[c] {
			codes = append(codes, c)
		}
	}

	var extra []models.AnswerCode
	for c := range set {
		if _, known := codeColors[c]; !known {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(codes, extra...)
}
