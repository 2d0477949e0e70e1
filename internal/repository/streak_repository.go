package repository

import (
	"errors"

	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
)

type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

// FindByUser 用户没有记录时返回 (nil, nil)
func (r *StreakRepository) FindByUser(userID uint) (*model.StreakRecord, error) {
	var rec model.StreakRecord
	err := r.DB.Where("user_id = ? AND streak_type = ?", userID, model.StreakTypeDaily).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *StreakRepository) FindByUsers(userIDs []uint) ([]model.StreakRecord, error) {
	if len(userIDs) == 0 {
		return []model.StreakRecord{}, nil
	}
	var recs []model.StreakRecord
	err := r.DB.Where("user_id IN ? AND streak_type = ?", userIDs, model.StreakTypeDaily).
		Find(&recs).Error
	return recs, err
}

func (r *StreakRepository) Save(rec *model.StreakRecord) error {
	return r.DB.Save(rec).Error
}
