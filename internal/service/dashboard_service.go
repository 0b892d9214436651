package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/survey-dashboard-go/internal/aggregator"
	"github.com/jengzang/survey-dashboard-go/internal/chart"
	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// View names accepted by DashboardService.View
const (
	ViewFrequency      = "frequency"
	ViewProportion     = "proportion"
	ViewQuestionCounts = "question-counts"
	ViewMeanScores     = "mean-scores"
	ViewSentiment      = "sentiment"
	ViewHeatmap        = "heatmap"
	ViewScoreSummary   = "score-summary"
	ViewSummary        = "summary"
)

// ViewNames lists every view in dashboard order
var ViewNames = []string{
	ViewFrequency,
	ViewProportion,
	ViewQuestionCounts,
	ViewMeanScores,
	ViewSentiment,
	ViewHeatmap,
	ViewScoreSummary,
	ViewSummary,
}

var (
	ErrUnknownView  = errors.New("unknown view")
	ErrUnknownChart = errors.New("unknown chart")
)

// TableSource provides the raw response table
type TableSource interface {
	Get() (*models.RawResponseTable, error)
}

// DashboardService computes dashboard views from the loaded survey table.
// Views are recomputed on every call; only the table itself is cached.
type DashboardService struct {
	source           TableSource
	identifierColumn string
	now              func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(source TableSource, identifierColumn string) *DashboardService {
	return &DashboardService{
		source:           source,
		identifierColumn: identifierColumn,
		now:              time.Now,
	}
}

// GetDashboard computes every view
func (s *DashboardService) GetDashboard() (*models.Dashboard, error) {
	raw, err := s.table()
	if err != nil {
		return nil, err
	}

	d, err := aggregator.Aggregate(raw, s.identifierColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate survey data: %w", err)
	}

	d.Summary.GeneratedAt = s.now().Format(time.RFC3339)
	return d, nil
}

// GetView computes a single view by name
func (s *DashboardService) GetView(name string) (interface{}, error) {
	raw, err := s.table()
	if err != nil {
		return nil, err
	}

	records, err := aggregator.Prepare(raw, s.identifierColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate survey data: %w", err)
	}

	switch name {
	case ViewFrequency:
		return aggregator.CountByCode(records), nil
	case ViewProportion:
		return aggregator.Proportions(aggregator.CountByCode(records)), nil
	case ViewQuestionCounts:
		return aggregator.CountByQuestionAndCode(records), nil
	case ViewMeanScores:
		return aggregator.MeanScoreByQuestion(records), nil
	case ViewSentiment:
		return aggregator.CountBySentiment(records), nil
	case ViewHeatmap:
		return aggregator.ToHeatmapMatrix(aggregator.MeanScoreByQuestion(records)), nil
	case ViewScoreSummary:
		return aggregator.SummarizeScores(records), nil
	case ViewSummary:
		summary := aggregator.Summarize(raw, records)
		summary.GeneratedAt = s.now().Format(time.RFC3339)
		return summary, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// GetCharts builds every chart spec
func (s *DashboardService) GetCharts() ([]chart.Spec, error) {
	d, err := s.GetDashboard()
	if err != nil {
		return nil, err
	}
	return chart.BuildAll(d), nil
}

// GetChart builds one chart spec by name
func (s *DashboardService) GetChart(name string) (*chart.Spec, error) {
	d, err := s.GetDashboard()
	if err != nil {
		return nil, err
	}

	spec, ok := chart.Build(name, d)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return &spec, nil
}

func (s *DashboardService) table() (*models.RawResponseTable, error) {
	raw, err := s.source.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load survey data: %w", err)
	}
	return raw, nil
}
