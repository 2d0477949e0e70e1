package repository

import (
	"errors"

	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
)

// CompletionRepository 四步完成模型的读写：视频进度、工作表、check-in、
// bold action。推进引擎只消费这里读出的快照。
type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

func (r *CompletionRepository) FindVideoProgress(userID uint, contentID string) (*model.VideoProgress, error) {
	var vp model.VideoProgress
	err := r.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&vp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vp, err
}

func (r *CompletionRepository) SaveVideoProgress(vp *model.VideoProgress) error {
	return r.DB.Save(vp).Error
}

func (r *CompletionRepository) FindWorksheet(userID uint, contentID string) (*model.WorksheetSubmission, error) {
	var ws model.WorksheetSubmission
	err := r.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ws, err
}

func (r *CompletionRepository) CreateWorksheet(ws *model.WorksheetSubmission) error {
	return r.DB.Create(ws).Error
}

func (r *CompletionRepository) FindCheckin(userID uint, contentID string) (*model.Checkin, error) {
	var ci model.Checkin
	err := r.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&ci).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ci, err
}

func (r *CompletionRepository) SaveCheckin(ci *model.Checkin) error {
	return r.DB.Save(ci).Error
}

func (r *CompletionRepository) FindBoldAction(userID uint, contentID string) (*model.BoldAction, error) {
	var ba model.BoldAction
	err := r.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&ba).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ba, err
}

func (r *CompletionRepository) SaveBoldAction(ba *model.BoldAction) error {
	return r.DB.Save(ba).Error
}

// CompletionRows 一个用户在整条路径上的完成记录，按 contentId 聚合前的原始行
type CompletionRows struct {
	Videos     []model.VideoProgress
	Worksheets []model.WorksheetSubmission
	Checkins   []model.Checkin
	BoldAction []model.BoldAction
}

// LoadRowsForUser 一次性读出用户在给定内容集上的全部完成记录，
// 避免逐条目四次查询
func (r *CompletionRepository) LoadRowsForUser(userID uint, contentIDs []string) (*CompletionRows, error) {
	rows := &CompletionRows{}
	if len(contentIDs) == 0 {
		return rows, nil
	}

	if err := r.DB.Where("user_id = ? AND content_id IN ?", userID, contentIDs).Find(&rows.Videos).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Where("user_id = ? AND content_id IN ?", userID, contentIDs).Find(&rows.Worksheets).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Where("user_id = ? AND content_id IN ?", userID, contentIDs).Find(&rows.Checkins).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Where("user_id = ? AND content_id IN ?", userID, contentIDs).Find(&rows.BoldAction).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
