package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/progression"
	"leaderpath_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

// fakeLedger 内存版积分流水，模拟唯一索引行为
type fakeLedger struct {
	entries   []model.PointsEntry
	createErr error
}

func (f *fakeLedger) Exists(userID uint, contentID, reason string) (bool, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.ContentID == contentID && e.Reason == reason {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedger) Create(entry *model.PointsEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeLedger) SumByUser(userID uint) (int, error) {
	total := 0
	for _, e := range f.entries {
		if e.UserID == userID {
			total += e.Points
		}
	}
	return total, nil
}

func TestPointsServiceAward(t *testing.T) {
	earnedAt := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	t.Run("首次发放写入新流水", func(t *testing.T) {
		ledger := &fakeLedger{}
		svc := NewPointsService(ledger)

		awarded, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		require.NoError(t, err)
		assert.True(t, awarded)

		require.Len(t, ledger.entries, 1)
		entry := ledger.entries[0]
		assert.Equal(t, uint(7), entry.UserID)
		assert.Equal(t, PointsVideoComplete, entry.Points)
		assert.Equal(t, progression.WeekStart(earnedAt), entry.PeriodWeek)
	})

	t.Run("同一(user,content,reason)重复发放不产生新流水", func(t *testing.T) {
		ledger := &fakeLedger{}
		svc := NewPointsService(ledger)

		first, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		require.NoError(t, err)
		assert.True(t, first)

		second, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		require.NoError(t, err)
		assert.False(t, second)

		assert.Len(t, ledger.entries, 1)

		total, err := svc.TotalForUser(7)
		require.NoError(t, err)
		assert.Equal(t, PointsVideoComplete, total)
	})

	t.Run("不同reason对同一内容各记一条", func(t *testing.T) {
		ledger := &fakeLedger{}
		svc := NewPointsService(ledger)

		_, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		require.NoError(t, err)
		_, err = svc.Award(7, "video-1", "worksheet_complete", PointsWorksheetComplete, earnedAt)
		require.NoError(t, err)

		total, err := svc.TotalForUser(7)
		require.NoError(t, err)
		assert.Equal(t, PointsVideoComplete+PointsWorksheetComplete, total)
	})

	t.Run("并发撞唯一索引按已发放处理", func(t *testing.T) {
		// 两个请求都通过 Exists 检查，输掉的那个在 Create 时撞 idx_points_idem
		ledger := &fakeLedger{createErr: gorm.ErrDuplicatedKey}
		svc := NewPointsService(ledger)

		awarded, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		require.NoError(t, err)
		assert.False(t, awarded)
	})

	t.Run("其他写入错误原样返回", func(t *testing.T) {
		dbErr := errors.New("connection lost")
		ledger := &fakeLedger{createErr: dbErr}
		svc := NewPointsService(ledger)

		awarded, err := svc.Award(7, "video-1", "video_complete", PointsVideoComplete, earnedAt)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, awarded)
	})
}
