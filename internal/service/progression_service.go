package service

import (
	"time"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/progression"
	"leaderpath_backend/internal/repository"
	"leaderpath_backend/pkg/monitoring"
)

// ProgressionService 解锁判定的唯一入口。页面渲染和 API 都必须走
// EvaluateSequence，不允许各自复制规则。
type ProgressionService struct {
	PathRepo       *repository.LearningPathRepository
	CompletionRepo *repository.CompletionRepository
}

func NewProgressionService(
	pathRepo *repository.LearningPathRepository,
	completionRepo *repository.CompletionRepository,
) *ProgressionService {
	return &ProgressionService{
		PathRepo:       pathRepo,
		CompletionRepo: completionRepo,
	}
}

// EvaluateSequence 读取组织的激活路径和用户完成状态，交给引擎判定。
// today 显式传入，便于测试和保证可重复
func (s *ProgressionService) EvaluateSequence(organizationID, userID uint, today time.Time) (*progression.SequenceResult, error) {
	path, err := s.PathRepo.FindActiveByOrganization(organizationID)
	if err != nil {
		return nil, err
	}

	cfg, items := pathToEngineInput(path)

	var states map[string]progression.CompletionState
	if len(items) > 0 {
		contentIDs := make([]string, len(items))
		for i, item := range items {
			contentIDs[i] = item.ContentID
		}
		rows, err := s.CompletionRepo.LoadRowsForUser(userID, contentIDs)
		if err != nil {
			return nil, err
		}
		states = assembleStates(rows)
	}

	result, err := progression.EvaluateSequence(cfg, items, states, today)
	if err == nil {
		monitoring.SequenceEvaluations.Inc()
	}
	return result, err
}

// IsItemComplete 单个内容的完成判定（完成事件写入路径复用）
func (s *ProgressionService) IsItemComplete(organizationID, userID uint, contentID string) (bool, error) {
	path, err := s.PathRepo.FindActiveByOrganization(organizationID)
	if err != nil {
		return false, err
	}
	requirement := model.RequireFull
	if path != nil {
		requirement = path.CompletionRequirement
	}

	rows, err := s.CompletionRepo.LoadRowsForUser(userID, []string{contentID})
	if err != nil {
		return false, err
	}
	return progression.IsModuleComplete(assembleStates(rows)[contentID], requirement), nil
}

func pathToEngineInput(path *model.LearningPath) (*progression.PathConfig, []progression.PathItem) {
	if path == nil {
		return nil, nil
	}

	cfg := &progression.PathConfig{
		UnlockMode:            path.UnlockMode,
		CompletionRequirement: path.CompletionRequirement,
		EnrollmentDate:        path.EnrollmentDate,
		UnlockIntervalDays:    path.UnlockIntervalDays,
	}

	items := make([]progression.PathItem, len(path.Items))
	for i, it := range path.Items {
		items[i] = progression.PathItem{
			ContentID:          it.ContentID,
			Title:              it.Title,
			SequenceOrder:      it.SequenceOrder,
			UnlockDate:         it.UnlockDate,
			IsOptional:         it.IsOptional,
			IsManuallyUnlocked: it.IsManuallyUnlocked,
		}
	}
	return cfg, items
}

// assembleStates 把四张表的行聚合成引擎输入，缺失的内容保持零值（未完成）
func assembleStates(rows *repository.CompletionRows) map[string]progression.CompletionState {
	states := make(map[string]progression.CompletionState)
	if rows == nil {
		return states
	}

	for _, v := range rows.Videos {
		st := states[v.ContentID]
		st.VideoProgressPercent = v.ProgressPercent
		states[v.ContentID] = st
	}
	for _, w := range rows.Worksheets {
		st := states[w.ContentID]
		st.WorksheetSubmitted = true
		states[w.ContentID] = st
	}
	for _, c := range rows.Checkins {
		st := states[c.ContentID]
		st.CheckinStatus = c.Status
		states[c.ContentID] = st
	}
	for _, b := range rows.BoldAction {
		st := states[b.ContentID]
		st.BoldActionStatus = b.Status
		states[b.ContentID] = st
	}
	return states
}
