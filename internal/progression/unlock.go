package progression

import (
	"fmt"
	"sort"
	"time"

	"leaderpath_backend/internal/model"
)

// DateOf 截断到 UTC 零点，引擎内所有日期比较都先经过它
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EvaluateSequence 对一条路径做完整解锁判定。
//
// items 按 SequenceOrder 稳定排序后逐个求值；第 i 项依赖第 i-1 项的完成
// 状态，是有意的串行依赖。cfg 为 nil 或 items 为空时返回
// HasSequence=false（无路径即不设限，绝不把学员锁在外面）。
// states 以 contentId 为键，缺失条目视为未完成。
func EvaluateSequence(cfg *PathConfig, items []PathItem, states map[string]CompletionState, today time.Time) (*SequenceResult, error) {
	if cfg == nil || len(items) == 0 {
		return &SequenceResult{HasSequence: false, Items: []ItemStatus{}}, nil
	}

	if cfg.UnlockIntervalDays < 0 {
		return nil, fmt.Errorf("unlockIntervalDays 不能为负数: %d", cfg.UnlockIntervalDays)
	}
	for id, st := range states {
		if st.VideoProgressPercent < 0 || st.VideoProgressPercent > 100 {
			return nil, fmt.Errorf("内容 %s 的视频进度超出范围 [0,100]: %.2f", id, st.VideoProgressPercent)
		}
	}

	today = DateOf(today)
	enrollment := DateOf(cfg.EnrollmentDate)

	// 重复的 sequenceOrder 不报错：稳定排序保留输入顺序，数据层的唯一索引
	// 负责在写入时阻止重复
	sorted := make([]PathItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SequenceOrder < sorted[j].SequenceOrder
	})

	result := &SequenceResult{
		HasSequence: true,
		Items:       make([]ItemStatus, len(sorted)),
	}

	for i, item := range sorted {
		complete := IsModuleComplete(states[item.ContentID], cfg.CompletionRequirement)

		timeUnlockDate := enrollment.AddDate(0, 0, i*cfg.UnlockIntervalDays)
		if item.UnlockDate != nil {
			timeUnlockDate = DateOf(*item.UnlockDate)
		}

		previousComplete := i == 0 ||
			IsModuleComplete(states[sorted[i-1].ContentID], cfg.CompletionRequirement)

		status := ItemStatus{
			ContentID:     item.ContentID,
			Title:         item.Title,
			SequenceOrder: item.SequenceOrder,
			IsComplete:    complete,
			IsOptional:    item.IsOptional,
			UnlockDate:    timeUnlockDate,
		}

		if i == 0 {
			// 首项无条件解锁，优先于所有模式判定
			status.IsUnlocked = true
		} else {
			status.IsUnlocked, status.UnlockReason = evaluateUnlock(cfg, item, timeUnlockDate, previousComplete, today)
			status.ReasonText = reasonText(status.UnlockReason, timeUnlockDate)
		}

		result.Items[i] = status
	}

	return result, nil
}

func evaluateUnlock(cfg *PathConfig, item PathItem, unlockDate time.Time, previousComplete bool, today time.Time) (bool, UnlockReason) {
	// 管理员手动解锁在任何模式下都生效
	if item.IsManuallyUnlocked {
		return true, ReasonNone
	}

	switch cfg.UnlockMode {
	case model.UnlockManual:
		return false, ReasonAwaitingAdmin

	case model.UnlockTimeBased:
		if !today.Before(unlockDate) {
			return true, ReasonNone
		}
		return false, ReasonUnlocksOnDate

	case model.UnlockCompletion:
		if previousComplete {
			return true, ReasonNone
		}
		return false, ReasonPreviousIncomplete

	case model.UnlockHybrid:
		dateReached := !today.Before(unlockDate)
		switch {
		case dateReached && previousComplete:
			return true, ReasonNone
		case !dateReached && !previousComplete:
			return false, ReasonDateAndPrevious
		case !dateReached:
			return false, ReasonUnlocksOnDate
		default:
			return false, ReasonPreviousIncomplete
		}

	default:
		// 未知模式按 completion_based 处理，不让配置脏数据锁死学员
		if previousComplete {
			return true, ReasonNone
		}
		return false, ReasonPreviousIncomplete
	}
}

// reasonText 生成展示文案。文案仅供渲染，调用方区分原因请用 UnlockReason
func reasonText(reason UnlockReason, unlockDate time.Time) string {
	switch reason {
	case ReasonAwaitingAdmin:
		return "等待管理员解锁"
	case ReasonUnlocksOnDate:
		return fmt.Sprintf("将于 %s 解锁", unlockDate.Format("2006-01-02"))
	case ReasonPreviousIncomplete:
		return "请先完成上一个模块"
	case ReasonDateAndPrevious:
		return fmt.Sprintf("需先完成上一个模块，且 %s 后才会解锁", unlockDate.Format("2006-01-02"))
	default:
		return ""
	}
}
