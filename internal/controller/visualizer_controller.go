package controller

import (
	"net/http"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// VisualizerController 处理代码执行可视化请求

type VisualizerController struct {
	VisualizerService *service.VisualizerService
}

func NewVisualizerController(visualizerService *service.VisualizerService) *VisualizerController {
	return &VisualizerController{VisualizerService: visualizerService}
}

// @Summary 代码执行可视化
// @Description 调用AI生成逐步执行的可视化步骤
// @Tags 可视化
// @Accept json
// @Produce json
// @Param request body service.VisualizeRequest true "代码和语言"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /visualize [post]
func (c *VisualizerController) Visualize(ctx *gin.Context) {
	var req service.VisualizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Code and language are required")
		return
	}

	visualization, err := c.VisualizerService.Visualize(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":       true,
		"visualization": visualization,
	})
}
