package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/service"
	"leaderpath_backend/internal/util"
)

type UserController struct {
	UserService *service.UserService
	AuthService *service.AuthService
}

func NewUserController(userService *service.UserService, authService *service.AuthService) *UserController {
	return &UserController{UserService: userService, AuthService: authService}
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UpdateProfile godoc
// @Summary 更新本人资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.Avatar)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// ListMembers godoc
// @Summary 列出组织成员
// @Description 组长和管理员查看组织（可选按小组）的活跃成员
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   teamId query int false "仅看某个小组"
// @Success 200 {object} util.Response{data=[]model.User} "Success"
// @Router /api/members [get]
func (c *UserController) ListMembers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var teamID *uint
	if raw := ctx.Query("teamId"); raw != "" {
		id, err := util.ParseUint(raw)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		teamID = &id
	}

	members, err := c.UserService.ListMembers(claims.OrganizationID, teamID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, members)
}

// swagger:model AssignTeamRequest
type AssignTeamRequest struct {
	TeamID *uint `json:"teamId"` // null 表示移出小组
}

// AssignTeam godoc
// @Summary 调整成员所属小组
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "成员ID"
// @Param   body body AssignTeamRequest true "目标小组"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/admin/members/{id}/team [put]
func (c *UserController) AssignTeam(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	memberID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req AssignTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.UserService.AssignTeam(operator, memberID, req.TeamID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, member)
}

// swagger:model SetRoleRequest
type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member leader admin"`
}

// SetRole godoc
// @Summary 调整成员角色
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "成员ID"
// @Param   body body SetRoleRequest true "目标角色"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/admin/members/{id}/role [put]
func (c *UserController) SetRole(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	memberID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.UserService.SetRole(operator, memberID, model.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) || errors.Is(err, util.ErrInvalidRole) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, member)
}

// swagger:model TeamRequest
type TeamRequest struct {
	Name     string `json:"name" binding:"required"`
	LeaderID uint   `json:"leaderId"`
}

// CreateTeam godoc
// @Summary 创建小组
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body TeamRequest true "小组信息"
// @Success 201 {object} util.Response{data=model.Team} "创建成功"
// @Router /api/admin/teams [post]
func (c *UserController) CreateTeam(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	team, err := c.UserService.CreateTeam(operator, req.Name, req.LeaderID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, team)
}

// ListTeams godoc
// @Summary 列出组织的小组
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Team} "Success"
// @Router /api/teams [get]
func (c *UserController) ListTeams(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	teams, err := c.UserService.ListTeams(claims.OrganizationID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, teams)
}

// UpdateTeam godoc
// @Summary 更新小组
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "小组ID"
// @Param   body body TeamRequest true "小组信息"
// @Success 200 {object} util.Response{data=model.Team} "Success"
// @Router /api/admin/teams/{id} [put]
func (c *UserController) UpdateTeam(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	teamID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	team, err := c.UserService.UpdateTeam(operator, teamID, req.Name, req.LeaderID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, team)
}

// DeleteTeam godoc
// @Summary 删除小组
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "小组ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/teams/{id} [delete]
func (c *UserController) DeleteTeam(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	teamID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.DeleteTeam(operator, teamID); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// swagger:model SetDisabledRequest
type SetDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// SetDisabled godoc
// @Summary 禁用/恢复成员
// @Description 禁用成员不再出现在排行榜与成员列表中
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "成员ID"
// @Param   body body SetDisabledRequest true "禁用标志"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/admin/members/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	operator := c.AuthService.GetCurrentUser(ctx)
	if operator == nil {
		util.Unauthorized(ctx)
		return
	}

	memberID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.UserService.SetDisabled(operator, memberID, req.Disabled)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, member)
}
