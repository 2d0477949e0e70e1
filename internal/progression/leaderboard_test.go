package progression

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLeaderboardCompetitionRanking(t *testing.T) {
	members := []MemberInfo{
		{UserID: 1, DisplayName: "Alice Wang"},
		{UserID: 2, DisplayName: "Bob Li"},
		{UserID: 3, DisplayName: "Carol Zhang"},
	}
	points := map[uint]int{1: 100, 2: 100, 3: 80}

	res := ComputeLeaderboard(members, points, nil, 3)
	require.Len(t, res.Entries, 3)

	// 同分共享名次，下一名从位置序号继续：[100,100,80] → [1,1,3]
	assert.Equal(t, []int{1, 1, 3}, []int{res.Entries[0].Rank, res.Entries[1].Rank, res.Entries[2].Rank})
	assert.Equal(t, 3, res.CurrentUserRank)
	assert.Equal(t, 80, res.CurrentUserPoints)
	assert.Equal(t, 3, res.TotalParticipants)
}

func TestComputeLeaderboardSelfAppend(t *testing.T) {
	// 30 人中排第 15：前 10 之外，自己作为第 11 个元素附加
	var members []MemberInfo
	points := map[uint]int{}
	for i := uint(1); i <= 30; i++ {
		members = append(members, MemberInfo{UserID: i, DisplayName: fmt.Sprintf("User %d", i)})
		points[i] = int(1000 - i*10) // 分数随 ID 递减，无并列
	}
	currentUser := uint(15)

	res := ComputeLeaderboard(members, points, nil, currentUser)
	require.Len(t, res.Entries, 11)

	for _, e := range res.Entries[:10] {
		assert.NotEqual(t, currentUser, e.UserID)
	}
	self := res.Entries[10]
	assert.Equal(t, currentUser, self.UserID)
	assert.True(t, self.IsCurrentUser)
	assert.Equal(t, 15, self.Rank)
	assert.Equal(t, 15, res.CurrentUserRank)
}

func TestComputeLeaderboardCurrentUserInTopNotDuplicated(t *testing.T) {
	members := []MemberInfo{
		{UserID: 1, DisplayName: "A"},
		{UserID: 2, DisplayName: "B"},
	}
	res := ComputeLeaderboard(members, map[uint]int{1: 10, 2: 5}, nil, 1)
	assert.Len(t, res.Entries, 2)
	assert.True(t, res.Entries[0].IsCurrentUser)
}

func TestComputeLeaderboardEmptyMembers(t *testing.T) {
	res := ComputeLeaderboard(nil, nil, nil, 1)
	assert.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.TotalParticipants)
	assert.Zero(t, res.CurrentUserRank)
}

func TestComputeLeaderboardStreaksCarried(t *testing.T) {
	members := []MemberInfo{{UserID: 1, DisplayName: "Alice Wang"}}
	res := ComputeLeaderboard(members, map[uint]int{1: 50}, map[uint]int{1: 7}, 1)
	assert.Equal(t, 7, res.Entries[0].CurrentStreak)
}

func TestComputeLeaderboardDeterministicTies(t *testing.T) {
	members := []MemberInfo{
		{UserID: 9, DisplayName: "I"},
		{UserID: 3, DisplayName: "C"},
		{UserID: 7, DisplayName: "G"},
	}
	points := map[uint]int{9: 50, 3: 50, 7: 50}

	first := ComputeLeaderboard(members, points, nil, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeLeaderboard(members, points, nil, 0))
	}
	// 同分按 userID 升序
	assert.Equal(t, uint(3), first.Entries[0].UserID)
	assert.Equal(t, uint(7), first.Entries[1].UserID)
	assert.Equal(t, uint(9), first.Entries[2].UserID)
	assert.Equal(t, []int{1, 1, 1}, []int{first.Entries[0].Rank, first.Entries[1].Rank, first.Entries[2].Rank})
}

func TestPrivacyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Wang", "Alice W."},
		{"Mary Jane Watson", "Mary W."},
		{"Prince", "Prince"},
		{"", "Unknown"},
		{"   ", "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrivacyName(tt.in), "PrivacyName(%q)", tt.in)
	}
}
