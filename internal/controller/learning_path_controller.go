package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/service"
	"leaderpath_backend/internal/util"
)

type LearningPathController struct {
	LearningPathService *service.LearningPathService
}

func NewLearningPathController(learningPathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{LearningPathService: learningPathService}
}

// swagger:model PathRequest
type PathRequest struct {
	Name                  string    `json:"name" binding:"required"`
	UnlockMode            string    `json:"unlockMode" binding:"required,oneof=manual time_based completion_based hybrid"`
	CompletionRequirement string    `json:"completionRequirement" binding:"required,oneof=video_only worksheet full"`
	EnrollmentDate        time.Time `json:"enrollmentDate" binding:"required"`
	UnlockIntervalDays    int       `json:"unlockIntervalDays"`
	IsActive              bool      `json:"isActive"`
}

// CreatePath godoc
// @Summary 创建学习路径
// @Description 管理员创建路径；设为激活时自动取消组织内其他激活路径
// @Tags 路径管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PathRequest true "路径配置"
// @Success 201 {object} util.Response{data=model.LearningPath} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/paths [post]
func (c *LearningPathController) CreatePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path := &model.LearningPath{
		OrganizationID:        claims.OrganizationID,
		Name:                  req.Name,
		UnlockMode:            model.UnlockMode(req.UnlockMode),
		CompletionRequirement: model.CompletionRequirement(req.CompletionRequirement),
		EnrollmentDate:        req.EnrollmentDate,
		UnlockIntervalDays:    req.UnlockIntervalDays,
		IsActive:              req.IsActive,
	}

	if err := c.LearningPathService.CreatePath(path); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, path)
}

// UpdatePath godoc
// @Summary 更新学习路径
// @Tags 路径管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "路径ID"
// @Param   body body PathRequest true "路径配置"
// @Success 200 {object} util.Response{data=model.LearningPath} "Success"
// @Failure 404 {object} util.Response "路径不存在"
// @Router /api/admin/paths/{id} [put]
func (c *LearningPathController) UpdatePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pathID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.LearningPathService.GetPath(pathID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	if path.OrganizationID != claims.OrganizationID {
		util.Forbidden(ctx)
		return
	}

	var req PathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path.Name = req.Name
	path.UnlockMode = model.UnlockMode(req.UnlockMode)
	path.CompletionRequirement = model.CompletionRequirement(req.CompletionRequirement)
	path.EnrollmentDate = req.EnrollmentDate
	path.UnlockIntervalDays = req.UnlockIntervalDays
	path.IsActive = req.IsActive

	if err := c.LearningPathService.UpdatePath(path); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, path)
}

// ActivatePath godoc
// @Summary 激活学习路径
// @Description 激活指定路径，组织内其他路径自动取消激活
// @Tags 路径管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "路径ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/paths/{id}/activate [post]
func (c *LearningPathController) ActivatePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pathID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningPathService.ActivatePath(claims.OrganizationID, pathID); err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, nil)
}

// ListPaths godoc
// @Summary 列出组织的学习路径
// @Tags 路径管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LearningPath} "Success"
// @Router /api/admin/paths [get]
func (c *LearningPathController) ListPaths(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	paths, err := c.LearningPathService.ListPaths(claims.OrganizationID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, paths)
}

// GetPath godoc
// @Summary 获取学习路径详情
// @Tags 路径管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "路径ID"
// @Success 200 {object} util.Response{data=model.LearningPath} "Success"
// @Failure 404 {object} util.Response "路径不存在"
// @Router /api/admin/paths/{id} [get]
func (c *LearningPathController) GetPath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pathID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.LearningPathService.GetPath(pathID)
	if err != nil || path.OrganizationID != claims.OrganizationID {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, path)
}

// DeletePath godoc
// @Summary 删除学习路径
// @Tags 路径管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "路径ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/paths/{id} [delete]
func (c *LearningPathController) DeletePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pathID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.LearningPathService.GetPath(pathID)
	if err != nil || path.OrganizationID != claims.OrganizationID {
		util.NotFound(ctx)
		return
	}

	if err := c.LearningPathService.DeletePath(path.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// swagger:model ItemRequest
type ItemRequest struct {
	ContentID     string     `json:"contentId" binding:"required"`
	Title         string     `json:"title"`
	SequenceOrder int        `json:"sequenceOrder"`
	UnlockDate    *time.Time `json:"unlockDate"`
	IsOptional    bool       `json:"isOptional"`
}

// AddItem godoc
// @Summary 向路径追加条目
// @Tags 路径管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "路径ID"
// @Param   body body ItemRequest true "条目"
// @Success 201 {object} util.Response{data=model.LearningPathItem} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/paths/{id}/items [post]
func (c *LearningPathController) AddItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pathID, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.LearningPathService.GetPath(pathID)
	if err != nil || path.OrganizationID != claims.OrganizationID {
		util.NotFound(ctx)
		return
	}

	var req ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := &model.LearningPathItem{
		LearningPathID: path.ID,
		ContentID:      req.ContentID,
		Title:          req.Title,
		SequenceOrder:  req.SequenceOrder,
		UnlockDate:     req.UnlockDate,
		IsOptional:     req.IsOptional,
	}

	if err := c.LearningPathService.AddItem(item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, item)
}

// UpdateItem godoc
// @Summary 更新条目
// @Tags 路径管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   itemId path int true "条目ID"
// @Param   body body ItemRequest true "条目"
// @Success 200 {object} util.Response{data=model.LearningPathItem} "Success"
// @Failure 404 {object} util.Response "条目不存在"
// @Router /api/admin/items/{itemId} [put]
func (c *LearningPathController) UpdateItem(ctx *gin.Context) {
	itemID, err := util.ParseUint(ctx.Param("itemId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.LearningPathService.GetItem(itemID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item.ContentID = req.ContentID
	item.Title = req.Title
	item.SequenceOrder = req.SequenceOrder
	item.UnlockDate = req.UnlockDate
	item.IsOptional = req.IsOptional

	if err := c.LearningPathService.UpdateItem(item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, item)
}

// swagger:model ManualUnlockRequest
type ManualUnlockRequest struct {
	Unlocked bool `json:"unlocked"`
}

// SetManualUnlock godoc
// @Summary 手动解锁/回收条目
// @Description 任何解锁模式下管理员都可手动解锁单个条目
// @Tags 路径管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   itemId path int true "条目ID"
// @Param   body body ManualUnlockRequest true "解锁标志"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/items/{itemId}/manual-unlock [put]
func (c *LearningPathController) SetManualUnlock(ctx *gin.Context) {
	itemID, err := util.ParseUint(ctx.Param("itemId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req ManualUnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningPathService.SetManualUnlock(itemID, req.Unlocked); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// DeleteItem godoc
// @Summary 删除条目
// @Tags 路径管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   itemId path int true "条目ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/items/{itemId} [delete]
func (c *LearningPathController) DeleteItem(ctx *gin.Context) {
	itemID, err := util.ParseUint(ctx.Param("itemId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningPathService.DeleteItem(itemID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
