package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"leaderpath_backend/internal/service"
	"leaderpath_backend/internal/util"
)

type ProgressionController struct {
	ProgressionService *service.ProgressionService
	ActivityService    *service.ActivityService
	PointsService      *service.PointsService
}

func NewProgressionController(
	progressionService *service.ProgressionService,
	activityService *service.ActivityService,
	pointsService *service.PointsService,
) *ProgressionController {
	return &ProgressionController{
		ProgressionService: progressionService,
		ActivityService:    activityService,
		PointsService:      pointsService,
	}
}

// GetSequence godoc
// @Summary 获取学习路径解锁状态
// @Description 按当前用户的完成情况判定路径上每个条目是否解锁、锁定原因
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=progression.SequenceResult} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/sequence [get]
func (c *ProgressionController) GetSequence(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ProgressionService.EvaluateSequence(claims.OrganizationID, claims.UserID, time.Now().UTC())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetStreak godoc
// @Summary 获取连续学习摘要
// @Description 当前连续天数、历史最长、今天是否处于中断风险
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=progression.StreakSummary} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/streak [get]
func (c *ProgressionController) GetStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.ActivityService.GetSummary(claims.UserID, time.Now().UTC())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// GetPoints godoc
// @Summary 获取本人积分总数
// @Tags 学习路径
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/points [get]
func (c *ProgressionController) GetPoints(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	total, err := c.PointsService.TotalForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"totalPoints": total})
}

// GetItemCompletion godoc
// @Summary 查询单个模块的完成状态
// @Description 按当前激活路径的完成标准判定某个内容是否已完成
// @Tags 学习路径
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path string true "内容ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/content/{contentId}/completion [get]
func (c *ProgressionController) GetItemCompletion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	complete, err := c.ProgressionService.IsItemComplete(claims.OrganizationID, claims.UserID, ctx.Param("contentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"isComplete": complete})
}
