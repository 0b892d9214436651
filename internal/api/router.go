package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/survey-dashboard-go/internal/config"
	"github.com/jengzang/survey-dashboard-go/internal/handler"
	"github.com/jengzang/survey-dashboard-go/internal/middleware"
	"github.com/jengzang/survey-dashboard-go/internal/service"
)

// DashboardTitle is shown on the dashboard page
const DashboardTitle = "Survey Dashboard"

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.DashboardService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	if cfg.RateLimit > 0 && cfg.RateLimitWindow > 0 {
		r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)))
	}

	r.SetHTMLTemplate(handler.Templates())

	h := handler.NewDashboardHandler(svc, DashboardTitle)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Survey Dashboard API is running",
		})
	})

	r.GET("/", h.Index)

	// API 路由组
	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard", h.GetDashboard)

		views := v1.Group("/views")
		{
			views.GET("", h.ListViews)
			views.GET("/:name", h.GetView)
		}

		charts := v1.Group("/charts")
		{
			charts.GET("", h.GetCharts)
			charts.GET("/:name", h.GetChart)
		}
	}

	return r
}
