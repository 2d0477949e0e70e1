package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/service"
	"leaderpath_backend/internal/util"
)

type CompletionController struct {
	CompletionService *service.CompletionService
	AuthService       *service.AuthService
	UserService       *service.UserService
}

func NewCompletionController(
	completionService *service.CompletionService,
	authService *service.AuthService,
	userService *service.UserService,
) *CompletionController {
	return &CompletionController{
		CompletionService: completionService,
		AuthService:       authService,
		UserService:       userService,
	}
}

// swagger:model VideoProgressRequest
type VideoProgressRequest struct {
	ProgressPercent float64 `json:"progressPercent" binding:"min=0,max=100"`
}

// UpdateVideoProgress godoc
// @Summary 上报视频观看进度
// @Description 进度只增不减，达到 90% 视为看完并发放积分
// @Tags 完成
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path string true "内容ID"
// @Param   body body VideoProgressRequest true "进度"
// @Success 200 {object} util.Response{data=model.VideoProgress} "Success"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/content/{contentId}/video-progress [put]
func (c *CompletionController) UpdateVideoProgress(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req VideoProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vp, err := c.CompletionService.UpdateVideoProgress(user, ctx.Param("contentId"), req.ProgressPercent)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, vp)
}

// swagger:model WorksheetRequest
type WorksheetRequest struct {
	Answers        string `json:"answers" binding:"required"`
	BoldActionText string `json:"boldActionText"`
}

// SubmitWorksheet godoc
// @Summary 提交工作表
// @Description 提交问答内容与 bold action 承诺，重复提交返回已有记录
// @Tags 完成
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path string true "内容ID"
// @Param   body body WorksheetRequest true "工作表内容"
// @Success 201 {object} util.Response{data=model.WorksheetSubmission} "创建成功"
// @Failure 409 {object} util.Response "已提交过"
// @Router /api/content/{contentId}/worksheet [post]
func (c *CompletionController) SubmitWorksheet(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req WorksheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ws, err := c.CompletionService.SubmitWorksheet(user, ctx.Param("contentId"), req.Answers, req.BoldActionText)
	if err != nil {
		if errors.Is(err, util.ErrWorksheetSubmitted) {
			util.Error(ctx, 409, "该工作表已提交")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, ws)
}

// swagger:model CheckinRequest
type CheckinRequest struct {
	UserID      uint       `json:"userId" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=none pending scheduled completed"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Notes       string     `json:"notes"`
}

// UpdateCheckin godoc
// @Summary 更新成员 check-in 状态
// @Description 组长安排或完成与成员的进度确认，完成时给成员发放积分
// @Tags 完成
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path string true "内容ID"
// @Param   body body CheckinRequest true "check-in 状态"
// @Success 200 {object} util.Response{data=model.Checkin} "Success"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/content/{contentId}/checkin [put]
func (c *CompletionController) UpdateCheckin(ctx *gin.Context) {
	leader := c.AuthService.GetCurrentUser(ctx)
	if leader == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.UserService.GetProfile(req.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	if member.OrganizationID != leader.OrganizationID {
		util.Forbidden(ctx)
		return
	}

	ci, err := c.CompletionService.UpdateCheckin(
		leader, member, ctx.Param("contentId"),
		model.CheckinStatus(req.Status), req.ScheduledAt, req.Notes)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ci)
}

// swagger:model BoldActionRequest
type BoldActionRequest struct {
	UserID uint   `json:"userId"` // 省略时操作本人的记录
	Status string `json:"status" binding:"required,oneof=pending pending_approval completed signed_off"`
}

// UpdateBoldAction godoc
// @Summary 推进 bold action 状态
// @Description completed 可由本人标记，signed_off 由组长签核；到达终态发放积分
// @Tags 完成
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path string true "内容ID"
// @Param   body body BoldActionRequest true "目标状态"
// @Success 200 {object} util.Response{data=model.BoldAction} "Success"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/content/{contentId}/bold-action [put]
func (c *CompletionController) UpdateBoldAction(ctx *gin.Context) {
	actor := c.AuthService.GetCurrentUser(ctx)
	if actor == nil {
		util.Unauthorized(ctx)
		return
	}

	var req BoldActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	owner := actor
	if req.UserID != 0 && req.UserID != actor.ID {
		if actor.Role == model.Member {
			util.Forbidden(ctx)
			return
		}
		var err error
		owner, err = c.UserService.GetProfile(req.UserID)
		if err != nil {
			util.NotFound(ctx)
			return
		}
		if owner.OrganizationID != actor.OrganizationID {
			util.Forbidden(ctx)
			return
		}
	}

	ba, err := c.CompletionService.UpdateBoldAction(actor, owner, ctx.Param("contentId"), model.BoldActionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBoldActionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, ba)
}
