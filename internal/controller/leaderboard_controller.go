package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"leaderpath_backend/internal/service"
	"leaderpath_backend/internal/util"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary 获取排行榜
// @Description 组织或小组排行榜，前 10 名；请求者不在前 10 时附加一条自己的名次
// @Tags 排行榜
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   period query string false "weekly 或 all，默认 all"
// @Param   teamId query int false "仅看某个小组"
// @Success 200 {object} util.Response{data=progression.LeaderboardResult} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	period := ctx.DefaultQuery("period", service.PeriodAllTime)

	var teamID *uint
	if raw := ctx.Query("teamId"); raw != "" {
		id, err := util.ParseUint(raw)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		teamID = &id
	}

	result, err := c.LeaderboardService.ComputeLeaderboard(
		claims.OrganizationID, teamID, period, claims.UserID, time.Now().UTC())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
