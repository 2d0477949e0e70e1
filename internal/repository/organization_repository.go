package repository

import (
	"gorm.io/gorm"

	"leaderpath_backend/internal/model"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) Create(org *model.Organization) error {
	return r.DB.Create(org).Error
}

func (r *OrganizationRepository) FindByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := r.DB.First(&org, id).Error
	return &org, err
}

func (r *OrganizationRepository) CreateTeam(team *model.Team) error {
	return r.DB.Create(team).Error
}

func (r *OrganizationRepository) FindTeamByID(id uint) (*model.Team, error) {
	var team model.Team
	err := r.DB.First(&team, id).Error
	return &team, err
}

func (r *OrganizationRepository) ListTeams(organizationID uint) ([]model.Team, error) {
	var teams []model.Team
	err := r.DB.Where("organization_id = ?", organizationID).Order("id asc").Find(&teams).Error
	return teams, err
}

func (r *OrganizationRepository) UpdateTeam(team *model.Team) error {
	return r.DB.Save(team).Error
}

func (r *OrganizationRepository) DeleteTeam(id uint) error {
	return r.DB.Delete(&model.Team{}, id).Error
}
