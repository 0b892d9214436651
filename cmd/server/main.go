package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/survey-dashboard-go/internal/api"
	"github.com/jengzang/survey-dashboard-go/internal/config"
	"github.com/jengzang/survey-dashboard-go/internal/loader"
	"github.com/jengzang/survey-dashboard-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Survey data is read on first request and kept for the process lifetime
	cache := loader.NewCache(cfg.DataPath, loader.Options{Sheet: cfg.Sheet})
	svc := service.NewDashboardService(cache, cfg.IdentifierColumn)

	// 初始化路由
	router := api.SetupRouter(cfg, svc)

	// 启动服务器
	log.Printf("Server starting on port %s (data: %s, identifier column: %s)", cfg.Port, cache.Path(), cfg.IdentifierColumn)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
