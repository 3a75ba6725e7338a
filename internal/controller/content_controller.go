package controller

import (
	"errors"
	"net/http"
	"strconv"

	"story_learning_backend/internal/service"
	"story_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service *service.ContentService
}

func NewContentController(svc *service.ContentService) *ContentController {
	return &ContentController{Service: svc}
}

// @Summary 服务根信息
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *ContentController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Story Learning Game Backend Running",
	})
}

// @Summary 初始化默认学习路径
// @Description 存储为空时写入固定的默认路径；force=true 会清空全部内容与所有用户进度后重建
// @Tags 管理
// @Produce json
// @Param force query bool false "强制重建（破坏性操作）" default(false)
// @Success 200 {object} service.BootstrapResult
// @Failure 500 {object} util.Response
// @Router /bootstrap [post]
func (c *ContentController) Bootstrap(ctx *gin.Context) {
	force, err := strconv.ParseBool(ctx.DefaultQuery("force", "false"))
	if err != nil {
		util.BadRequest(ctx, "force must be a boolean")
		return
	}

	result, err := c.Service.Bootstrap(ctx.Request.Context(), force)
	if err != nil {
		if errors.Is(err, util.ErrStoreUnavailable) {
			util.InternalServerError(ctx, "Database not configured")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary 获取全部学习路径
// @Tags 内容
// @Produce json
// @Success 200 {array} model.LearningPath
// @Failure 500 {object} util.Response
// @Router /paths [get]
func (c *ContentController) ListPaths(ctx *gin.Context) {
	paths, err := c.Service.ListPaths(ctx.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStoreUnavailable):
			util.InternalServerError(ctx, "Database not configured")
		case errors.Is(err, util.ErrMalformedDocument):
			util.InternalServerError(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, paths)
}
