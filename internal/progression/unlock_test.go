package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaderpath_backend/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func completeState() CompletionState {
	return CompletionState{
		VideoProgressPercent: 100,
		WorksheetSubmitted:   true,
		CheckinStatus:        model.CheckinCompleted,
		BoldActionStatus:     model.BoldActionSignedOff,
	}
}

func threeItems() []PathItem {
	return []PathItem{
		{ContentID: "c1", SequenceOrder: 0},
		{ContentID: "c2", SequenceOrder: 1},
		{ContentID: "c3", SequenceOrder: 2},
	}
}

func TestEvaluateSequenceNoPath(t *testing.T) {
	res, err := EvaluateSequence(nil, nil, nil, date(2025, 3, 1))
	require.NoError(t, err)
	assert.False(t, res.HasSequence)
	assert.Empty(t, res.Items)

	// 有配置但没有条目同样视为无路径
	cfg := &PathConfig{UnlockMode: model.UnlockTimeBased}
	res, err = EvaluateSequence(cfg, []PathItem{}, nil, date(2025, 3, 1))
	require.NoError(t, err)
	assert.False(t, res.HasSequence)
}

func TestEvaluateSequenceFirstItemAlwaysUnlocked(t *testing.T) {
	modes := []model.UnlockMode{
		model.UnlockManual, model.UnlockTimeBased, model.UnlockCompletion, model.UnlockHybrid,
	}
	for _, mode := range modes {
		cfg := &PathConfig{
			UnlockMode:            mode,
			CompletionRequirement: model.RequireFull,
			EnrollmentDate:        date(2099, 1, 1), // 远未来：时间条件必然不满足
			UnlockIntervalDays:    7,
		}
		res, err := EvaluateSequence(cfg, threeItems(), nil, date(2025, 1, 1))
		require.NoError(t, err)
		assert.True(t, res.Items[0].IsUnlocked, "mode=%s 下首项必须解锁", mode)
	}
}

func TestEvaluateSequenceTimeBasedArithmetic(t *testing.T) {
	cfg := &PathConfig{
		UnlockMode:            model.UnlockTimeBased,
		CompletionRequirement: model.RequireVideoOnly,
		EnrollmentDate:        date(2025, 1, 1),
		UnlockIntervalDays:    7,
	}

	// 第 2 个索引在 1 月 15 日解锁（1+2*7），不是 14 日
	res, err := EvaluateSequence(cfg, threeItems(), nil, date(2025, 1, 14))
	require.NoError(t, err)
	assert.Equal(t, date(2025, 1, 15), res.Items[2].UnlockDate)
	assert.False(t, res.Items[2].IsUnlocked)
	assert.Equal(t, ReasonUnlocksOnDate, res.Items[2].UnlockReason)

	res, err = EvaluateSequence(cfg, threeItems(), nil, date(2025, 1, 15))
	require.NoError(t, err)
	assert.True(t, res.Items[2].IsUnlocked)

	// 索引 1 在 1 月 8 日解锁
	assert.True(t, res.Items[1].IsUnlocked)
	assert.Equal(t, date(2025, 1, 8), res.Items[1].UnlockDate)
}

func TestEvaluateSequenceExplicitUnlockDateOverride(t *testing.T) {
	override := date(2025, 2, 1)
	items := threeItems()
	items[1].UnlockDate = &override

	cfg := &PathConfig{
		UnlockMode:         model.UnlockTimeBased,
		EnrollmentDate:     date(2025, 1, 1),
		UnlockIntervalDays: 7,
	}
	res, err := EvaluateSequence(cfg, items, nil, date(2025, 1, 20))
	require.NoError(t, err)
	assert.Equal(t, override, res.Items[1].UnlockDate)
	assert.False(t, res.Items[1].IsUnlocked)
}

func TestEvaluateSequenceCompletionBased(t *testing.T) {
	cfg := &PathConfig{
		UnlockMode:            model.UnlockCompletion,
		CompletionRequirement: model.RequireVideoOnly,
	}

	states := map[string]CompletionState{}
	res, err := EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Items[0].IsUnlocked)
	assert.False(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonPreviousIncomplete, res.Items[1].UnlockReason)

	// 完成 c1 后 c2 解锁，c3 仍锁
	states["c1"] = CompletionState{VideoProgressPercent: 95}
	res, err = EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Items[1].IsUnlocked)
	assert.False(t, res.Items[2].IsUnlocked)
}

func TestEvaluateSequenceManual(t *testing.T) {
	items := threeItems()
	items[2].IsManuallyUnlocked = true

	cfg := &PathConfig{UnlockMode: model.UnlockManual, CompletionRequirement: model.RequireFull}
	res, err := EvaluateSequence(cfg, items, nil, date(2025, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Items[0].IsUnlocked) // 首项强制解锁，无需管理员操作
	assert.False(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonAwaitingAdmin, res.Items[1].UnlockReason)
	assert.True(t, res.Items[2].IsUnlocked)
}

func TestEvaluateSequenceManualOverrideInAnyMode(t *testing.T) {
	// 管理员手动解锁不受模式限制
	items := threeItems()
	items[2].IsManuallyUnlocked = true

	cfg := &PathConfig{
		UnlockMode:            model.UnlockHybrid,
		CompletionRequirement: model.RequireFull,
		EnrollmentDate:        date(2099, 1, 1),
		UnlockIntervalDays:    7,
	}
	res, err := EvaluateSequence(cfg, items, nil, date(2025, 1, 1))
	require.NoError(t, err)
	assert.False(t, res.Items[1].IsUnlocked)
	assert.True(t, res.Items[2].IsUnlocked)
}

func TestEvaluateSequenceHybridDistinguishesFailures(t *testing.T) {
	cfg := &PathConfig{
		UnlockMode:            model.UnlockHybrid,
		CompletionRequirement: model.RequireVideoOnly,
		EnrollmentDate:        date(2025, 1, 1),
		UnlockIntervalDays:    7,
	}

	// 时间已到但前项未完成 → 原因只指前项
	res, err := EvaluateSequence(cfg, threeItems(), nil, date(2025, 3, 1))
	require.NoError(t, err)
	assert.False(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonPreviousIncomplete, res.Items[1].UnlockReason)

	// 前项完成但时间未到 → 原因只指日期
	states := map[string]CompletionState{"c1": {VideoProgressPercent: 92}}
	res, err = EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 2))
	require.NoError(t, err)
	assert.False(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonUnlocksOnDate, res.Items[1].UnlockReason)

	// 两个条件都不满足 → 原因同时指两者
	res, err = EvaluateSequence(cfg, threeItems(), nil, date(2025, 1, 2))
	require.NoError(t, err)
	assert.False(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonDateAndPrevious, res.Items[1].UnlockReason)

	// 两个条件都满足 → 解锁
	res, err = EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 8))
	require.NoError(t, err)
	assert.True(t, res.Items[1].IsUnlocked)
	assert.Equal(t, ReasonNone, res.Items[1].UnlockReason)
}

func TestEvaluateSequenceValidation(t *testing.T) {
	cfg := &PathConfig{UnlockMode: model.UnlockTimeBased, UnlockIntervalDays: -1}
	_, err := EvaluateSequence(cfg, threeItems(), nil, date(2025, 1, 1))
	assert.Error(t, err)

	cfg.UnlockIntervalDays = 7
	states := map[string]CompletionState{"c1": {VideoProgressPercent: 120}}
	_, err = EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 1))
	assert.Error(t, err)
}

func TestEvaluateSequenceDuplicateOrderStable(t *testing.T) {
	// 重复的 sequenceOrder 不报错，稳定排序保留输入顺序
	items := []PathItem{
		{ContentID: "a", SequenceOrder: 0},
		{ContentID: "b", SequenceOrder: 1},
		{ContentID: "c", SequenceOrder: 1},
		{ContentID: "d", SequenceOrder: 5}, // 序号有跳跃也照常处理
	}
	cfg := &PathConfig{UnlockMode: model.UnlockCompletion, CompletionRequirement: model.RequireVideoOnly}

	res, err := EvaluateSequence(cfg, items, nil, date(2025, 1, 1))
	require.NoError(t, err)
	require.Len(t, res.Items, 4)
	assert.Equal(t, "b", res.Items[1].ContentID)
	assert.Equal(t, "c", res.Items[2].ContentID)
	assert.Equal(t, "d", res.Items[3].ContentID)
}

func TestEvaluateSequenceDeterministic(t *testing.T) {
	cfg := &PathConfig{
		UnlockMode:            model.UnlockHybrid,
		CompletionRequirement: model.RequireWorksheet,
		EnrollmentDate:        date(2025, 1, 1),
		UnlockIntervalDays:    3,
	}
	states := map[string]CompletionState{
		"c1": completeState(),
		"c2": {VideoProgressPercent: 50},
	}

	first, err := EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 10))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := EvaluateSequence(cfg, threeItems(), states, date(2025, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
