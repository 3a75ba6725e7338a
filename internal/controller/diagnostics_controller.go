package controller

import (
	"net/http"

	"story_learning_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type DiagnosticsController struct {
	Service *service.DiagnosticsService
}

func NewDiagnosticsController(svc *service.DiagnosticsService) *DiagnosticsController {
	return &DiagnosticsController{Service: svc}
}

// @Summary 存储连通性自检
// @Description 逐项报告进程、存储可达性、配置项与可见集合；无论存储状态如何都返回 200
// @Tags 系统
// @Produce json
// @Success 200 {object} service.DiagnosticsReport
// @Router /test [get]
func (c *DiagnosticsController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Service.Check(ctx.Request.Context()))
}
