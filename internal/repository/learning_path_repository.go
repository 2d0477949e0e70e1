package repository

import (
	"errors"

	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

// FindActiveByOrganization 获取组织当前激活的路径及其条目（按顺序预载）。
// 没有激活路径返回 (nil, nil)，调用方按"无路径不设限"处理。
func (r *LearningPathRepository) FindActiveByOrganization(organizationID uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order asc")
	}).Where("organization_id = ? AND is_active = ?", organizationID, true).First(&path).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *LearningPathRepository) FindByID(id uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order asc")
	}).First(&path, id).Error
	return &path, err
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) Update(path *model.LearningPath) error {
	return r.DB.Save(path).Error
}

func (r *LearningPathRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("learning_path_id = ?", id).Delete(&model.LearningPathItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LearningPath{}, id).Error
	})
}

// DeactivateAll 把组织下所有路径置为未激活，用于保证最多一条激活路径
func (r *LearningPathRepository) DeactivateAll(tx *gorm.DB, organizationID uint) error {
	return tx.Model(&model.LearningPath{}).
		Where("organization_id = ?", organizationID).
		Update("is_active", false).Error
}

func (r *LearningPathRepository) ListByOrganization(organizationID uint) ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.DB.Where("organization_id = ?", organizationID).Order("id desc").Find(&paths).Error
	return paths, err
}

func (r *LearningPathRepository) CreateItem(item *model.LearningPathItem) error {
	return r.DB.Create(item).Error
}

func (r *LearningPathRepository) FindItemByID(id uint) (*model.LearningPathItem, error) {
	var item model.LearningPathItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *LearningPathRepository) UpdateItem(item *model.LearningPathItem) error {
	return r.DB.Save(item).Error
}

func (r *LearningPathRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.LearningPathItem{}, id).Error
}

// SetManualUnlock 管理员手动解锁/回收某个条目
func (r *LearningPathRepository) SetManualUnlock(itemID uint, unlocked bool) error {
	return r.DB.Model(&model.LearningPathItem{}).
		Where("id = ?", itemID).
		Update("is_manually_unlocked", unlocked).Error
}
