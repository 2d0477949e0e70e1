package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
)

type PointsRepository struct {
	DB *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

// Exists 写入边界的幂等检查：同一 (user, content, reason) 只允许一条流水
func (r *PointsRepository) Exists(userID uint, contentID, reason string) (bool, error) {
	var entry model.PointsEntry
	err := r.DB.Where("user_id = ? AND content_id = ? AND reason = ?", userID, contentID, reason).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create 追加流水。唯一索引 idx_points_idem 兜底并发下的重复写入，
// 撞索引时原样返回 gorm.ErrDuplicatedKey，由发放服务判定为已发放
func (r *PointsRepository) Create(entry *model.PointsEntry) error {
	return r.DB.Create(entry).Error
}

// ListByUsers 读出一批用户的流水；weekStart 非 nil 时只取该周（周一 00:00 UTC 起）
func (r *PointsRepository) ListByUsers(userIDs []uint, weekStart *time.Time) ([]model.PointsEntry, error) {
	if len(userIDs) == 0 {
		return []model.PointsEntry{}, nil
	}
	var entries []model.PointsEntry
	query := r.DB.Where("user_id IN ?", userIDs)
	if weekStart != nil {
		query = query.Where("period_week = ?", *weekStart)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// SumByUser 单个用户的总分（个人主页用）
func (r *PointsRepository) SumByUser(userID uint) (int, error) {
	var total int64
	err := r.DB.Model(&model.PointsEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return int(total), err
}
