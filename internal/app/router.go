package app

import (
	"story_learning_backend/docs"
	"story_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 游戏端六个接口挂在根路径，与既有客户端保持兼容；
// 运维类接口（health/metrics/swagger）按平台惯例分开挂载。
func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.content.Root)
	router.POST("/bootstrap", c.content.Bootstrap)
	router.GET("/paths", c.content.ListPaths)
	router.POST("/progress/toggle", c.progress.Toggle)
	router.GET("/progress/:user_id/:path_title", c.progress.GetProgress)
	router.GET("/test", c.diagnostics.Test)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
	}
}
