package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/repository"
)

func TestPathToEngineInput(t *testing.T) {
	t.Run("无路径返回空输入", func(t *testing.T) {
		cfg, items := pathToEngineInput(nil)
		assert.Nil(t, cfg)
		assert.Nil(t, items)
	})

	t.Run("字段逐一映射", func(t *testing.T) {
		enrollment := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		override := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		path := &model.LearningPath{
			UnlockMode:            model.UnlockHybrid,
			CompletionRequirement: model.RequireWorksheet,
			EnrollmentDate:        enrollment,
			UnlockIntervalDays:    7,
			Items: []model.LearningPathItem{
				{ContentID: "m1", Title: "第一课", SequenceOrder: 0},
				{ContentID: "m2", SequenceOrder: 1, UnlockDate: &override, IsOptional: true, IsManuallyUnlocked: true},
			},
		}

		cfg, items := pathToEngineInput(path)
		require.NotNil(t, cfg)
		assert.Equal(t, model.UnlockHybrid, cfg.UnlockMode)
		assert.Equal(t, model.RequireWorksheet, cfg.CompletionRequirement)
		assert.Equal(t, enrollment, cfg.EnrollmentDate)
		assert.Equal(t, 7, cfg.UnlockIntervalDays)

		require.Len(t, items, 2)
		assert.Equal(t, "m1", items[0].ContentID)
		assert.Equal(t, "第一课", items[0].Title)
		require.NotNil(t, items[1].UnlockDate)
		assert.Equal(t, override, *items[1].UnlockDate)
		assert.True(t, items[1].IsOptional)
		assert.True(t, items[1].IsManuallyUnlocked)
	})
}

func TestAssembleStates(t *testing.T) {
	t.Run("nil 行返回空映射", func(t *testing.T) {
		states := assembleStates(nil)
		assert.Empty(t, states)
	})

	t.Run("四张表聚合到同一内容", func(t *testing.T) {
		rows := &repository.CompletionRows{
			Videos:     []model.VideoProgress{{ContentID: "m1", ProgressPercent: 95}},
			Worksheets: []model.WorksheetSubmission{{ContentID: "m1"}},
			Checkins:   []model.Checkin{{ContentID: "m1", Status: model.CheckinCompleted}},
			BoldAction: []model.BoldAction{{ContentID: "m1", Status: model.BoldActionSignedOff}},
		}

		states := assembleStates(rows)
		st := states["m1"]
		assert.True(t, st.VideoComplete())
		assert.True(t, st.WorksheetSubmitted)
		assert.True(t, st.CheckinComplete())
		assert.True(t, st.BoldActionComplete())
	})

	t.Run("缺失记录保持零值", func(t *testing.T) {
		rows := &repository.CompletionRows{
			Videos: []model.VideoProgress{{ContentID: "m1", ProgressPercent: 40}},
		}

		states := assembleStates(rows)
		st := states["m1"]
		assert.False(t, st.VideoComplete())
		assert.False(t, st.WorksheetSubmitted)
		assert.False(t, st.CheckinComplete())
		assert.False(t, st.BoldActionComplete())

		_, ok := states["m2"]
		assert.False(t, ok)
	})
}
