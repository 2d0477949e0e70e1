package service

import (
	"time"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/progression"
	"leaderpath_backend/internal/repository"
)

// ActivityService 活动记录方：每次有效学习事件推进用户的连续天数记录。
// 引擎本身只读该记录，状态转移规则在 progression.AdvanceStreak。
type ActivityService struct {
	StreakRepo *repository.StreakRepository
}

func NewActivityService(streakRepo *repository.StreakRepository) *ActivityService {
	return &ActivityService{StreakRepo: streakRepo}
}

// RecordActivity 记录一次有效学习活动。当天重复事件是 no-op。
func (s *ActivityService) RecordActivity(userID uint, today time.Time) error {
	rec, err := s.StreakRepo.FindByUser(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &model.StreakRecord{
			UserID:     userID,
			StreakType: model.StreakTypeDaily,
		}
	}

	if !progression.AdvanceStreak(rec, today) {
		return nil
	}
	return s.StreakRepo.Save(rec)
}

// GetSummary 用户的连续学习摘要
func (s *ActivityService) GetSummary(userID uint, today time.Time) (*progression.StreakSummary, error) {
	rec, err := s.StreakRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := progression.SummarizeStreak(rec, today)
	return &summary, nil
}
