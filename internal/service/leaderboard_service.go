package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"leaderpath_backend/internal/progression"
	"leaderpath_backend/internal/repository"
	"leaderpath_backend/pkg/logger"
)

const (
	PeriodWeekly  = "weekly"
	PeriodAllTime = "all"

	leaderboardCacheTTL = 60 * time.Second
)

// LeaderboardService 组装排行榜输入并调用引擎。redis 只做数据装载边界的
// 直通缓存（短 TTL，发分后失效），排名本身永远重算，不落库。
type LeaderboardService struct {
	UserRepo   *repository.UserRepository
	PointsRepo *repository.PointsRepository
	StreakRepo *repository.StreakRepository
	Redis      *redis.Client
}

func NewLeaderboardService(
	userRepo *repository.UserRepository,
	pointsRepo *repository.PointsRepository,
	streakRepo *repository.StreakRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		UserRepo:   userRepo,
		PointsRepo: pointsRepo,
		StreakRepo: streakRepo,
		Redis:      rdb,
	}
}

// ComputeLeaderboard 计算组织（或小组）排行榜。period 取 weekly 或 all，
// 周榜按 today 所在的周一 00:00 UTC 过滤
func (s *LeaderboardService) ComputeLeaderboard(organizationID uint, teamID *uint, period string, currentUserID uint, today time.Time) (*progression.LeaderboardResult, error) {
	if period != PeriodWeekly {
		period = PeriodAllTime
	}

	cacheKey := s.cacheKey(organizationID, teamID, period, today)
	if cached := s.fromCache(cacheKey, currentUserID); cached != nil {
		return cached, nil
	}

	users, err := s.UserRepo.FindMembers(organizationID, teamID)
	if err != nil {
		return nil, err
	}

	members := make([]progression.MemberInfo, len(users))
	userIDs := make([]uint, len(users))
	for i, u := range users {
		members[i] = progression.MemberInfo{UserID: u.ID, DisplayName: u.Name}
		userIDs[i] = u.ID
	}

	var weekStart *time.Time
	if period == PeriodWeekly {
		w := progression.WeekStart(today)
		weekStart = &w
	}
	entries, err := s.PointsRepo.ListByUsers(userIDs, weekStart)
	if err != nil {
		return nil, err
	}
	ledger := make([]progression.LedgerEntry, len(entries))
	for i, e := range entries {
		ledger[i] = progression.LedgerEntry{UserID: e.UserID, Points: e.Points, EarnedAt: e.EarnedAt}
	}

	recs, err := s.StreakRepo.FindByUsers(userIDs)
	if err != nil {
		return nil, err
	}
	streaks := make(map[uint]int, len(recs))
	for _, r := range recs {
		streaks[r.UserID] = r.CurrentStreak
	}

	result := progression.ComputeLeaderboard(members, progression.SumPoints(ledger), streaks, currentUserID)
	s.toCache(cacheKey, members, ledger, streaks)
	return result, nil
}

// InvalidateCache 发分后调用，下一次查询重新装载
func (s *LeaderboardService) InvalidateCache(organizationID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	pattern := fmt.Sprintf("leaderboard:%d:*", organizationID)
	keys, err := s.Redis.Keys(ctx, pattern).Result()
	if err != nil {
		return
	}
	if len(keys) > 0 {
		s.Redis.Del(ctx, keys...)
	}
}

func (s *LeaderboardService) cacheKey(organizationID uint, teamID *uint, period string, today time.Time) string {
	team := uint(0)
	if teamID != nil {
		team = *teamID
	}
	// 周榜键里带上周起始日，跨周自然失效
	return fmt.Sprintf("leaderboard:%d:%d:%s:%s",
		organizationID, team, period, progression.WeekStart(today).Format("2006-01-02"))
}

// cachedInputs 缓存的是装载好的输入而不是排名结果：排名依赖请求者 ID，
// 输入对同一 (org, team, period) 的所有请求者通用
type cachedInputs struct {
	Members []progression.MemberInfo  `json:"members"`
	Ledger  []progression.LedgerEntry `json:"ledger"`
	Streaks map[uint]int              `json:"streaks"`
}

func (s *LeaderboardService) fromCache(key string, currentUserID uint) *progression.LeaderboardResult {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil
	}
	var in cachedInputs
	if err := json.Unmarshal(data, &in); err != nil {
		return nil
	}
	return progression.ComputeLeaderboard(in.Members, progression.SumPoints(in.Ledger), in.Streaks, currentUserID)
}

func (s *LeaderboardService) toCache(key string, members []progression.MemberInfo, ledger []progression.LedgerEntry, streaks map[uint]int) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(cachedInputs{Members: members, Ledger: ledger, Streaks: streaks})
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, data, leaderboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}
