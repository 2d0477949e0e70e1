package progression

import (
	"sort"
	"strings"
)

// 返回的排行榜最多包含前 10 名；请求者不在其中时作为第 11 个元素附加
const leaderboardTopSize = 10

// ComputeLeaderboard 把成员、积分与连续天数组合成排行榜。
//
// 名次采用 competition ranking：同分共享名次，下一个不同分数的名次是它的
// 位置序号（1-indexed），即 [100,100,80] → [1,1,3]。同分之间按 userID 升序
// 排列，保证对相同输入输出完全一致。
// 成员为空返回空 Entries 和 TotalParticipants=0，不是错误。
func ComputeLeaderboard(members []MemberInfo, points map[uint]int, streaks map[uint]int, currentUserID uint) *LeaderboardResult {
	ranked := make([]LeaderboardEntry, len(members))
	for i, m := range members {
		ranked[i] = LeaderboardEntry{
			UserID:        m.UserID,
			DisplayName:   PrivacyName(m.DisplayName),
			Points:        points[m.UserID],
			CurrentStreak: streaks[m.UserID],
			IsCurrentUser: m.UserID == currentUserID,
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	for i := range ranked {
		if i > 0 && ranked[i].Points == ranked[i-1].Points {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
	}

	result := &LeaderboardResult{
		TotalParticipants: len(ranked),
		Entries:           []LeaderboardEntry{},
	}

	currentInTop := false
	for i, e := range ranked {
		if e.IsCurrentUser {
			result.CurrentUserRank = e.Rank
			result.CurrentUserPoints = e.Points
			if i < leaderboardTopSize {
				currentInTop = true
			}
		}
		if i < leaderboardTopSize {
			result.Entries = append(result.Entries, e)
		}
	}

	if !currentInTop {
		for _, e := range ranked {
			if e.IsCurrentUser {
				result.Entries = append(result.Entries, e)
				break
			}
		}
	}

	return result
}

// PrivacyName 排行榜展示名："{名} {姓首字母}."；单词名原样返回；
// 空名显示 "Unknown"
func PrivacyName(full string) string {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "Unknown"
	case 1:
		return fields[0]
	default:
		last := []rune(fields[len(fields)-1])
		return fields[0] + " " + string(last[0]) + "."
	}
}
