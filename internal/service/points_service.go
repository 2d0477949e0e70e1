package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/progression"
	"leaderpath_backend/pkg/logger"
	"leaderpath_backend/pkg/monitoring"
)

// 各步骤的积分值
const (
	PointsVideoComplete      = 10
	PointsWorksheetComplete  = 15
	PointsCheckinComplete    = 10
	PointsBoldActionComplete = 25
)

// PointsLedger 积分流水的存取，*repository.PointsRepository 是生产实现
type PointsLedger interface {
	Exists(userID uint, contentID, reason string) (bool, error)
	Create(entry *model.PointsEntry) error
	SumByUser(userID uint) (int, error)
}

// PointsService 积分写入边界。流水只追加；同一 (user, content, reason)
// 重复调用（请求重试等）只产生一条流水。
type PointsService struct {
	Ledger PointsLedger
}

func NewPointsService(ledger PointsLedger) *PointsService {
	return &PointsService{Ledger: ledger}
}

// Award 幂等发放积分，返回是否真的写入了新流水
func (s *PointsService) Award(userID uint, contentID, reason string, points int, earnedAt time.Time) (bool, error) {
	exists, err := s.Ledger.Exists(userID, contentID, reason)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	entry := &model.PointsEntry{
		UserID:     userID,
		ContentID:  contentID,
		Reason:     reason,
		Points:     points,
		EarnedAt:   earnedAt,
		PeriodWeek: progression.WeekStart(earnedAt),
	}
	if err := s.Ledger.Create(entry); err != nil {
		// 两个并发请求同时通过 Exists 检查时，输掉的那个撞唯一索引，
		// 与已存在流水同样按"未写入"处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	monitoring.PointsAwarded.WithLabelValues(reason).Inc()
	logger.Log.Info("points awarded",
		zap.Uint("userId", userID),
		zap.String("contentId", contentID),
		zap.String("reason", reason),
		zap.Int("points", points),
	)
	return true, nil
}

// TotalForUser 用户的历史总分
func (s *PointsService) TotalForUser(userID uint) (int, error) {
	return s.Ledger.SumByUser(userID)
}
