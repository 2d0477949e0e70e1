package service

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/repository"
	"leaderpath_backend/pkg/logger"
)

// LearningPathService 学习路径管理（管理员侧）。保证组织同时最多一条
// 激活路径，并在写入时校验解锁配置。
type LearningPathService struct {
	DB       *gorm.DB
	PathRepo *repository.LearningPathRepository
}

func NewLearningPathService(db *gorm.DB, pathRepo *repository.LearningPathRepository) *LearningPathService {
	return &LearningPathService{DB: db, PathRepo: pathRepo}
}

// CreatePath 创建路径；is_active 为 true 时在同一事务里先取消其他激活路径
func (s *LearningPathService) CreatePath(path *model.LearningPath) error {
	if err := validatePathConfig(path); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if path.IsActive {
			if err := s.PathRepo.DeactivateAll(tx, path.OrganizationID); err != nil {
				return err
			}
		}
		if err := tx.Create(path).Error; err != nil {
			return err
		}
		logger.Log.Info("learning path created",
			zap.Uint("pathId", path.ID),
			zap.Uint("organizationId", path.OrganizationID),
			zap.String("unlockMode", string(path.UnlockMode)),
		)
		return nil
	})
}

// UpdatePath 更新路径配置，激活逻辑同创建
func (s *LearningPathService) UpdatePath(path *model.LearningPath) error {
	if err := validatePathConfig(path); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if path.IsActive {
			if err := s.PathRepo.DeactivateAll(tx, path.OrganizationID); err != nil {
				return err
			}
		}
		return tx.Save(path).Error
	})
}

// ActivatePath 激活指定路径并取消组织内其他激活路径
func (s *LearningPathService) ActivatePath(organizationID, pathID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var path model.LearningPath
		if err := tx.Where("id = ? AND organization_id = ?", pathID, organizationID).First(&path).Error; err != nil {
			return err
		}
		if err := s.PathRepo.DeactivateAll(tx, organizationID); err != nil {
			return err
		}
		return tx.Model(&path).Update("is_active", true).Error
	})
}

func (s *LearningPathService) DeletePath(id uint) error {
	return s.PathRepo.Delete(id)
}

func (s *LearningPathService) GetPath(id uint) (*model.LearningPath, error) {
	return s.PathRepo.FindByID(id)
}

func (s *LearningPathService) ListPaths(organizationID uint) ([]model.LearningPath, error) {
	return s.PathRepo.ListByOrganization(organizationID)
}

// AddItem 向路径追加条目。重复的 sequence_order 由唯一索引拒绝
func (s *LearningPathService) AddItem(item *model.LearningPathItem) error {
	if item.SequenceOrder < 0 {
		return fmt.Errorf("条目顺序不能为负数: %d", item.SequenceOrder)
	}
	return s.PathRepo.CreateItem(item)
}

func (s *LearningPathService) GetItem(id uint) (*model.LearningPathItem, error) {
	return s.PathRepo.FindItemByID(id)
}

func (s *LearningPathService) UpdateItem(item *model.LearningPathItem) error {
	if item.SequenceOrder < 0 {
		return fmt.Errorf("条目顺序不能为负数: %d", item.SequenceOrder)
	}
	return s.PathRepo.UpdateItem(item)
}

func (s *LearningPathService) DeleteItem(id uint) error {
	return s.PathRepo.DeleteItem(id)
}

// SetManualUnlock 管理员手动解锁或回收条目，任何解锁模式下都生效
func (s *LearningPathService) SetManualUnlock(itemID uint, unlocked bool) error {
	if err := s.PathRepo.SetManualUnlock(itemID, unlocked); err != nil {
		return err
	}
	logger.Log.Info("manual unlock updated",
		zap.Uint("itemId", itemID),
		zap.Bool("unlocked", unlocked),
	)
	return nil
}

func validatePathConfig(path *model.LearningPath) error {
	switch path.UnlockMode {
	case model.UnlockManual, model.UnlockTimeBased, model.UnlockCompletion, model.UnlockHybrid:
	default:
		return fmt.Errorf("无效的解锁模式: %s", path.UnlockMode)
	}
	switch path.CompletionRequirement {
	case model.RequireVideoOnly, model.RequireWorksheet, model.RequireFull:
	default:
		return fmt.Errorf("无效的完成标准: %s", path.CompletionRequirement)
	}
	if path.UnlockIntervalDays < 0 {
		return fmt.Errorf("解锁间隔不能为负数: %d", path.UnlockIntervalDays)
	}
	return nil
}
