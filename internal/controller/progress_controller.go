package controller

import (
	"errors"
	"net/http"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProgressController 处理主题完成状态的读写

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type SetProgressRequest struct {
	RoadmapID string `json:"roadmapId" binding:"required"`
	TopicID   string `json:"topicId" binding:"required"`
	Completed bool   `json:"completed"`
}

// @Summary 更新主题完成状态
// @Description upsert一条(roadmapId, topicId)的进度记录
// @Tags 进度
// @Accept json
// @Produce json
// @Param request body SetProgressRequest true "进度参数"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /progress [post]
func (c *ProgressController) SetProgress(ctx *gin.Context) {
	var req SetProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Roadmap ID and Topic ID are required")
		return
	}

	completed, err := c.ProgressService.SetProgress(req.RoadmapID, req.TopicID, req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found in roadmap")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"completed": completed,
	})
}

// @Summary 获取路线图进度
// @Description 返回路线图的全部进度记录（无序）
// @Tags 进度
// @Produce json
// @Param roadmapId query string true "路线图ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	roadmapID := ctx.Query("roadmapId")
	if roadmapID == "" {
		util.BadRequest(ctx, "Roadmap ID is required")
		return
	}

	records, err := c.ProgressService.GetProgress(roadmapID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"progress": records,
	})
}
