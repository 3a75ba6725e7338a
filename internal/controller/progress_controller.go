package controller

import (
	"errors"
	"net/http"

	"story_learning_backend/internal/service"
	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

type toggleRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	PathTitle string `json:"path_title" binding:"required"`
	NodeID    string `json:"node_id" binding:"required"`
}

// @Summary 翻转节点完成状态
// @Description 节点未完成则标记完成，已完成则取消；返回该用户在该路径下的完整已完成集合
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body toggleRequest true "用户、路径与节点"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /progress/toggle [post]
func (c *ProgressController) Toggle(ctx *gin.Context) {
	var req toggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	completed, err := c.Service.Toggle(ctx.Request.Context(), req.UserID, req.PathTitle, req.NodeID)
	if err != nil {
		monitoring.ToggleCounter.WithLabelValues("error").Inc()
		if errors.Is(err, util.ErrStoreUnavailable) {
			util.InternalServerError(ctx, "Database not configured")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.ToggleCounter.WithLabelValues("ok").Inc()
	ctx.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"completed_node_ids": completed,
	})
}

// @Summary 查询进度
// @Description 返回已完成节点集合；从未有过进度时返回空集合而非 404
// @Tags 进度
// @Produce json
// @Param user_id path string true "用户标识"
// @Param path_title path string true "路径标题"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} util.Response
// @Router /progress/{user_id}/{path_title} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	pathTitle := ctx.Param("path_title")

	completed, err := c.Service.Completed(ctx.Request.Context(), userID, pathTitle)
	if err != nil {
		if errors.Is(err, util.ErrStoreUnavailable) {
			util.InternalServerError(ctx, "Database not configured")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"completed_node_ids": completed,
	})
}
