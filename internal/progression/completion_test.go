package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leaderpath_backend/internal/model"
)

func TestIsModuleComplete(t *testing.T) {
	tests := []struct {
		name        string
		state       CompletionState
		requirement model.CompletionRequirement
		want        bool
	}{
		{
			name:        "video_only 95% 无工作表视为完成",
			state:       CompletionState{VideoProgressPercent: 95},
			requirement: model.RequireVideoOnly,
			want:        true,
		},
		{
			name:        "video_only 89% 未完成",
			state:       CompletionState{VideoProgressPercent: 89.9},
			requirement: model.RequireVideoOnly,
			want:        false,
		},
		{
			name:        "video_only 恰好 90% 完成",
			state:       CompletionState{VideoProgressPercent: 90},
			requirement: model.RequireVideoOnly,
			want:        true,
		},
		{
			name:        "worksheet 同一学员 95% 无提交则未完成",
			state:       CompletionState{VideoProgressPercent: 95},
			requirement: model.RequireWorksheet,
			want:        false,
		},
		{
			name:        "worksheet 视频+提交完成",
			state:       CompletionState{VideoProgressPercent: 95, WorksheetSubmitted: true},
			requirement: model.RequireWorksheet,
			want:        true,
		},
		{
			name:        "worksheet 只提交不看视频未完成",
			state:       CompletionState{VideoProgressPercent: 10, WorksheetSubmitted: true},
			requirement: model.RequireWorksheet,
			want:        false,
		},
		{
			name:        "full completed 即完成",
			state:       CompletionState{BoldActionStatus: model.BoldActionCompleted},
			requirement: model.RequireFull,
			want:        true,
		},
		{
			name:        "full signed_off 即完成",
			state:       CompletionState{BoldActionStatus: model.BoldActionSignedOff},
			requirement: model.RequireFull,
			want:        true,
		},
		{
			name:        "full pending_approval 未完成",
			state:       CompletionState{VideoProgressPercent: 100, WorksheetSubmitted: true, BoldActionStatus: model.BoldActionPendingApproval},
			requirement: model.RequireFull,
			want:        false,
		},
		{
			// 既有的不对称行为：full 只看 bold action 终态，
			// 不回头核验视频——0% 观看也判完成
			name:        "full 信任终态字段不核验视频",
			state:       CompletionState{VideoProgressPercent: 0, BoldActionStatus: model.BoldActionSignedOff},
			requirement: model.RequireFull,
			want:        true,
		},
		{
			name:        "零值状态任何模式都未完成",
			state:       CompletionState{},
			requirement: model.RequireVideoOnly,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsModuleComplete(tt.state, tt.requirement))
		})
	}
}
