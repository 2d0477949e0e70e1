package service

import (
	"leaderpath_backend/internal/model"
	"leaderpath_backend/internal/repository"
	"leaderpath_backend/internal/util"
)

// UserService 用户资料与组织内成员管理
type UserService struct {
	UserRepo *repository.UserRepository
	OrgRepo  *repository.OrganizationRepository
}

func NewUserService(userRepo *repository.UserRepository, orgRepo *repository.OrganizationRepository) *UserService {
	return &UserService{UserRepo: userRepo, OrgRepo: orgRepo}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

// UpdateProfile 更新本人可改的字段
func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListMembers 组织（或小组）的活跃成员
func (s *UserService) ListMembers(organizationID uint, teamID *uint) ([]model.User, error) {
	return s.UserRepo.FindMembers(organizationID, teamID)
}

// AssignTeam 把成员调入小组；teamID 为 nil 表示移出小组。
// 跨组织操作直接拒绝。
func (s *UserService) AssignTeam(operator *model.User, memberID uint, teamID *uint) (*model.User, error) {
	member, err := s.UserRepo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.OrganizationID != operator.OrganizationID {
		return nil, util.ErrPermissionDenied
	}
	if teamID != nil {
		team, err := s.OrgRepo.FindTeamByID(*teamID)
		if err != nil {
			return nil, err
		}
		if team.OrganizationID != operator.OrganizationID {
			return nil, util.ErrPermissionDenied
		}
	}

	member.TeamID = teamID
	if err := s.UserRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetRole 管理员调整成员角色
func (s *UserService) SetRole(operator *model.User, memberID uint, role model.UserRole) (*model.User, error) {
	if role != model.Member && role != model.Leader && role != model.Admin {
		return nil, util.ErrInvalidRole
	}
	member, err := s.UserRepo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.OrganizationID != operator.OrganizationID {
		return nil, util.ErrPermissionDenied
	}

	member.Role = role
	if err := s.UserRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// CreateTeam 在操作者所在组织创建小组
func (s *UserService) CreateTeam(operator *model.User, name string, leaderID uint) (*model.Team, error) {
	if leaderID != 0 {
		leader, err := s.UserRepo.FindByID(leaderID)
		if err != nil {
			return nil, err
		}
		if leader.OrganizationID != operator.OrganizationID {
			return nil, util.ErrPermissionDenied
		}
	}

	team := &model.Team{
		OrganizationID: operator.OrganizationID,
		Name:           name,
		LeaderID:       leaderID,
	}
	if err := s.OrgRepo.CreateTeam(team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *UserService) ListTeams(organizationID uint) ([]model.Team, error) {
	return s.OrgRepo.ListTeams(organizationID)
}

// UpdateTeam 改名或换组长，跨组织拒绝
func (s *UserService) UpdateTeam(operator *model.User, teamID uint, name string, leaderID uint) (*model.Team, error) {
	team, err := s.OrgRepo.FindTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	if team.OrganizationID != operator.OrganizationID {
		return nil, util.ErrPermissionDenied
	}

	if name != "" {
		team.Name = name
	}
	if leaderID != 0 {
		team.LeaderID = leaderID
	}
	if err := s.OrgRepo.UpdateTeam(team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *UserService) DeleteTeam(operator *model.User, teamID uint) error {
	team, err := s.OrgRepo.FindTeamByID(teamID)
	if err != nil {
		return err
	}
	if team.OrganizationID != operator.OrganizationID {
		return util.ErrPermissionDenied
	}
	return s.OrgRepo.DeleteTeam(teamID)
}

// SetDisabled 禁用/恢复成员。禁用成员不再出现在排行榜与成员列表中
func (s *UserService) SetDisabled(operator *model.User, memberID uint, disabled bool) (*model.User, error) {
	member, err := s.UserRepo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.OrganizationID != operator.OrganizationID {
		return nil, util.ErrPermissionDenied
	}

	member.Disabled = disabled
	if err := s.UserRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}
