package progression

import (
	"leaderpath_backend/internal/model"
)

// IsModuleComplete 按路径的完成要求判定模块是否完成。
//
// 注意 full 模式只信任 bold action 的终态字段，不回头核验视频、工作表和
// check-in——产品流程保证 bold action 走到终态时前面的步骤已发生。
// 这个不对称是既有行为，测试中有专门用例钉住，改动前先和产品确认。
func IsModuleComplete(state CompletionState, requirement model.CompletionRequirement) bool {
	switch requirement {
	case model.RequireVideoOnly:
		return state.VideoComplete()
	case model.RequireWorksheet:
		return state.VideoComplete() && state.WorksheetSubmitted
	case model.RequireFull:
		return state.BoldActionComplete()
	default:
		// 未知取值按最严格的 full 处理
		return state.BoldActionComplete()
	}
}
