package controller

import (
	"net/http"

	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/store"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store store.DocumentStore
}

func NewHealthController(s store.DocumentStore) *HealthController {
	return &HealthController{Store: s}
}

// @Summary 健康检查
// @Description 检查服务与存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if c.Store == nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Store unavailable")
		return
	}

	if err := c.Store.Ping(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "up",
		},
	})
}
