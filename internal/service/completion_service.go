package service

import (
	"fmt"
	"time"

	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/progression"
	"leaderpath_backend/internal/repository"
	"leaderpath_backend/internal/util"
)

// CompletionService 四步完成模型的写入路径：视频 → 工作表 → check-in →
// bold action。每一步在"首次达成"时发放积分并记一次学习活动；重复请求
// 不会产生第二条积分流水。
type CompletionService struct {
	CompletionRepo *repository.CompletionRepository
	Points         *PointsService
	Activity       *ActivityService
	Leaderboard    *LeaderboardService
}

func NewCompletionService(
	completionRepo *repository.CompletionRepository,
	points *PointsService,
	activity *ActivityService,
	leaderboard *LeaderboardService,
) *CompletionService {
	return &CompletionService{
		CompletionRepo: completionRepo,
		Points:         points,
		Activity:       activity,
		Leaderboard:    leaderboard,
	}
}

// UpdateVideoProgress 上报观看进度。进度只增不减；跨过 90% 时发放
// video_complete 积分
func (s *CompletionService) UpdateVideoProgress(user *model.User, contentID string, percent float64) (*model.VideoProgress, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("视频进度必须在 0-100 之间: %.2f", percent)
	}

	now := time.Now()
	vp, err := s.CompletionRepo.FindVideoProgress(user.ID, contentID)
	if err != nil {
		return nil, err
	}
	if vp == nil {
		vp = &model.VideoProgress{UserID: user.ID, ContentID: contentID}
	}

	if percent > vp.ProgressPercent {
		vp.ProgressPercent = percent
		vp.WatchedAt = &now
		if err := s.CompletionRepo.SaveVideoProgress(vp); err != nil {
			return nil, err
		}
	}

	if vp.ProgressPercent >= progression.VideoCompleteThreshold {
		if err := s.awardAndTouch(user, contentID, model.PointsReasonVideoComplete, PointsVideoComplete, now); err != nil {
			return nil, err
		}
	}
	return vp, nil
}

// SubmitWorksheet 提交工作表并登记 bold action 承诺。重复提交返回已有记录
func (s *CompletionService) SubmitWorksheet(user *model.User, contentID, answers, boldActionText string) (*model.WorksheetSubmission, error) {
	existing, err := s.CompletionRepo.FindWorksheet(user.ID, contentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, util.ErrWorksheetSubmitted
	}

	now := time.Now()
	ws := &model.WorksheetSubmission{
		UserID:         user.ID,
		ContentID:      contentID,
		Answers:        answers,
		BoldActionText: boldActionText,
		SubmittedAt:    now,
	}
	if err := s.CompletionRepo.CreateWorksheet(ws); err != nil {
		return nil, err
	}

	// 工作表里的承诺落为 pending 的 bold action
	if boldActionText != "" {
		ba, err := s.CompletionRepo.FindBoldAction(user.ID, contentID)
		if err != nil {
			return nil, err
		}
		if ba == nil {
			ba = &model.BoldAction{
				UserID:      user.ID,
				ContentID:   contentID,
				Description: boldActionText,
				Status:      model.BoldActionPending,
			}
			if err := s.CompletionRepo.SaveBoldAction(ba); err != nil {
				return nil, err
			}
		}
	}

	// check-in 进入待约状态，等组长安排
	ci, err := s.CompletionRepo.FindCheckin(user.ID, contentID)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		ci = &model.Checkin{UserID: user.ID, ContentID: contentID, Status: model.CheckinPending}
		if err := s.CompletionRepo.SaveCheckin(ci); err != nil {
			return nil, err
		}
	}

	if err := s.awardAndTouch(user, contentID, model.PointsReasonWorksheetComplete, PointsWorksheetComplete, now); err != nil {
		return nil, err
	}
	return ws, nil
}

// UpdateCheckin 组长更新成员某个模块的 check-in 状态；完成时给成员发分
func (s *CompletionService) UpdateCheckin(leader *model.User, member *model.User, contentID string, status model.CheckinStatus, scheduledAt *time.Time, notes string) (*model.Checkin, error) {
	if !validCheckinStatus(status) {
		return nil, fmt.Errorf("无效的 check-in 状态: %s", status)
	}

	ci, err := s.CompletionRepo.FindCheckin(member.ID, contentID)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		ci = &model.Checkin{UserID: member.ID, ContentID: contentID}
	}

	now := time.Now()
	ci.LeaderID = leader.ID
	ci.Status = status
	ci.Notes = notes
	if scheduledAt != nil {
		ci.ScheduledAt = scheduledAt
	}
	if status == model.CheckinCompleted && ci.CompletedAt == nil {
		ci.CompletedAt = &now
	}
	if err := s.CompletionRepo.SaveCheckin(ci); err != nil {
		return nil, err
	}

	if status == model.CheckinCompleted {
		if err := s.awardAndTouch(member, contentID, model.PointsReasonCheckinComplete, PointsCheckinComplete, now); err != nil {
			return nil, err
		}
	}
	return ci, nil
}

// UpdateBoldAction 推进 bold action 状态。completed 可由本人标记，
// signed_off 由组长签核；到达终态时发放 bold_action_complete 积分
func (s *CompletionService) UpdateBoldAction(actor *model.User, owner *model.User, contentID string, status model.BoldActionStatus) (*model.BoldAction, error) {
	if !validBoldActionStatus(status) {
		return nil, fmt.Errorf("无效的 bold action 状态: %s", status)
	}
	if status == model.BoldActionSignedOff && actor.Role == model.Member && actor.ID == owner.ID {
		return nil, util.ErrPermissionDenied
	}

	ba, err := s.CompletionRepo.FindBoldAction(owner.ID, contentID)
	if err != nil {
		return nil, err
	}
	if ba == nil {
		return nil, util.ErrBoldActionNotFound
	}

	now := time.Now()
	ba.Status = status
	if status == model.BoldActionSignedOff {
		ba.SignedBy = actor.ID
	}
	if (status == model.BoldActionCompleted || status == model.BoldActionSignedOff) && ba.CompletedAt == nil {
		ba.CompletedAt = &now
	}
	if err := s.CompletionRepo.SaveBoldAction(ba); err != nil {
		return nil, err
	}

	if status == model.BoldActionCompleted || status == model.BoldActionSignedOff {
		if err := s.awardAndTouch(owner, contentID, model.PointsReasonBoldActionComplete, PointsBoldActionComplete, now); err != nil {
			return nil, err
		}
	}
	return ba, nil
}

// awardAndTouch 幂等发分；真的写入了流水才记活动、失效排行榜缓存
func (s *CompletionService) awardAndTouch(user *model.User, contentID, reason string, points int, now time.Time) error {
	awarded, err := s.Points.Award(user.ID, contentID, reason, points, now)
	if err != nil {
		return err
	}
	if !awarded {
		return nil
	}
	if err := s.Activity.RecordActivity(user.ID, now); err != nil {
		return err
	}
	s.Leaderboard.InvalidateCache(user.OrganizationID)
	return nil
}

func validCheckinStatus(status model.CheckinStatus) bool {
	switch status {
	case model.CheckinNone, model.CheckinPending, model.CheckinScheduled, model.CheckinCompleted:
		return true
	}
	return false
}

func validBoldActionStatus(status model.BoldActionStatus) bool {
	switch status {
	case model.BoldActionNone, model.BoldActionPending, model.BoldActionPendingApproval,
		model.BoldActionCompleted, model.BoldActionSignedOff:
		return true
	}
	return false
}
