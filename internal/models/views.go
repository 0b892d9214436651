package models

// CodeCount is the number of responses carrying one answer code
type CodeCount struct {
	Code  AnswerCode `json:"code"`
	Count int        `json:"count"`
}

// AnswerFrequency counts responses per answer code, in scale order
type AnswerFrequency []CodeCount

// Total returns the sum of all counts
func (f AnswerFrequency) Total() int {
	total := 0
	for _, c := range f {
		total += c.Count
	}
	return total
}

// CodeShare is a code count together with its share of all responses
type CodeShare struct {
	Code  AnswerCode `json:"code"`
	Count int        `json:"count"`
	Share float64    `json:"share"` // 0-1
}

// AnswerProportion holds relative shares, largest first
type AnswerProportion []CodeShare

// QuestionCodeCount is the number of responses with a given code for one question
type QuestionCodeCount struct {
	Question string     `json:"question"`
	Code     AnswerCode `json:"code"`
	Count    int        `json:"count"`
}

// PerQuestionAnswerCounts holds present (question, code) combinations only
type PerQuestionAnswerCounts []QuestionCodeCount

// QuestionMean is the mean score of one question
type QuestionMean struct {
	Question  string  `json:"question"`
	MeanScore float64 `json:"mean_score"`
	Responses int     `json:"responses"` // Scored responses the mean is taken over
}

// PerQuestionMeanScore holds one mean per question with at least one scored response
type PerQuestionMeanScore []QuestionMean

// SentimentCount is the number of responses in one sentiment category
type SentimentCount struct {
	Sentiment Sentiment `json:"sentiment"`
	Count     int       `json:"count"`
}

// SentimentDistribution counts responses per sentiment
type SentimentDistribution []SentimentCount

// Total returns the sum of all counts
func (d SentimentDistribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}

// QuestionScoreStats describes the score spread of one question
type QuestionScoreStats struct {
	Question  string  `json:"question"`
	Responses int     `json:"responses"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	StdDev    float64 `json:"std_dev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Entropy   float64 `json:"entropy"` // Normalized answer entropy, 0 = full consensus
}

// ScoreSummary holds score statistics for every question
type ScoreSummary []QuestionScoreStats

// DashboardSummary holds headline figures for the whole table
type DashboardSummary struct {
	Respondents int     `json:"respondents"`
	Questions   int     `json:"questions"`
	Responses   int     `json:"responses"`
	OverallMean float64 `json:"overall_mean"`
	GeneratedAt string  `json:"generated_at,omitempty"`
}

// Dashboard bundles every derived view for one render
type Dashboard struct {
	Summary        DashboardSummary        `json:"summary"`
	Frequency      AnswerFrequency         `json:"frequency"`
	Proportion     AnswerProportion        `json:"proportion"`
	QuestionCounts PerQuestionAnswerCounts `json:"question_counts"`
	MeanScores     PerQuestionMeanScore    `json:"mean_scores"`
	Sentiment      SentimentDistribution   `json:"sentiment"`
	Heatmap        HeatmapMatrix           `json:"heatmap"`
	ScoreSummary   ScoreSummary            `json:"score_summary"`
}
