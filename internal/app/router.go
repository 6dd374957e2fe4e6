package app

import (
	"ai_tutor_backend/docs"
	"ai_tutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 路线图
		api.POST("/roadmaps/generate", c.roadmap.Generate)
		api.GET("/roadmaps", c.roadmap.List)
		api.GET("/roadmaps/:id", c.roadmap.GetByID)
		api.DELETE("/roadmaps/:id", c.roadmap.Delete)

		// 学习进度
		api.POST("/progress", c.progress.SetProgress)
		api.GET("/progress", c.progress.GetProgress)

		// 代码可视化
		api.POST("/visualize", c.visualizer.Visualize)
	}
}
