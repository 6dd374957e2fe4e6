package controller

import (
	"errors"
	"net/http"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoadmapController 处理路线图生成与查询的API请求

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// @Summary 生成学习路线图
// @Description 调用AI生成多天学习路线图并持久化
// @Tags 路线图
// @Accept json
// @Produce json
// @Param request body service.GenerateRoadmapRequest true "生成参数"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /roadmaps/generate [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	var req service.GenerateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RoadmapService.GenerateRoadmap(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"roadmapId":   result.RoadmapID,
		"title":       result.Title,
		"topicsCount": result.TopicsCount,
	})
}

// @Summary 获取路线图详情
// @Description 返回路线图及按顺序排列的主题
// @Tags 路线图
// @Produce json
// @Param id path string true "路线图ID"
// @Success 200 {object} service.RoadmapDetail
// @Failure 404 {object} util.ErrorResponse
// @Router /roadmaps/{id} [get]
func (c *RoadmapController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	detail, err := c.RoadmapService.GetRoadmap(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx, "Roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"roadmap": detail.Roadmap,
		"topics":  detail.Topics,
	})
}

// @Summary 路线图列表
// @Description 按创建时间倒序返回所有路线图
// @Tags 路线图
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /roadmaps [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	roadmaps, err := c.RoadmapService.ListRoadmaps()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"roadmaps": roadmaps,
	})
}

// @Summary 删除路线图
// @Description 删除路线图及其主题和进度记录
// @Tags 路线图
// @Produce json
// @Param id path string true "路线图ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /roadmaps/{id} [delete]
func (c *RoadmapController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.RoadmapService.DeleteRoadmap(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx, "Roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
