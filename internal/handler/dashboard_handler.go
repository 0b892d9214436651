package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/survey-dashboard-go/internal/aggregator"
	"github.com/jengzang/survey-dashboard-go/internal/chart"
	"github.com/jengzang/survey-dashboard-go/internal/service"
	"github.com/jengzang/survey-dashboard-go/pkg/response"
)

// DashboardHandler handles HTTP requests for survey dashboard data
type DashboardHandler struct {
	service *service.DashboardService
	title   string
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService, title string) *DashboardHandler {
	return &DashboardHandler{service: service, title: title}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.service.GetDashboard()
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, d)
}

// GetView handles GET /api/v1/views/:name
func (h *DashboardHandler) GetView(c *gin.Context) {
	v, err := h.service.GetView(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, v)
}

// ListViews handles GET /api/v1/views
func (h *DashboardHandler) ListViews(c *gin.Context) {
	response.Success(c, gin.H{
		"views":  service.ViewNames,
		"charts": chart.Names,
	})
}

// GetCharts handles GET /api/v1/charts
func (h *DashboardHandler) GetCharts(c *gin.Context) {
	specs, err := h.service.GetCharts()
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"charts": specs,
		"count":  len(specs),
	})
}

// GetChart handles GET /api/v1/charts/:name
func (h *DashboardHandler) GetChart(c *gin.Context) {
	spec, err := h.service.GetChart(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, spec)
}

// Index handles GET / and serves the dashboard page
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, dashboardTemplateName, gin.H{
		"Title":     h.title,
		"ChartsURL": "/api/v1/charts",
	})
}

// fail maps service errors to HTTP status codes
func (h *DashboardHandler) fail(c *gin.Context, err error) {
	switch {
	case aggregator.IsInputError(err):
		response.UnprocessableEntity(c, "Invalid survey data", err)
	case errors.Is(err, service.ErrUnknownView), errors.Is(err, service.ErrUnknownChart):
		response.NotFound(c, "Not found", err)
	default:
		response.InternalError(c, "Failed to compute survey views", err)
	}
}
