package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/utils"
)

// PortfolioRepository is the read surface for the four content tables,
// plus the creators the seed step uses to populate an empty store.
// Request-serving code never calls the creators.
type PortfolioRepository interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	GetSkills(ctx context.Context) ([]models.Skill, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetExperience(ctx context.Context) ([]models.Experience, error)

	CreateProfile(ctx context.Context, p *models.Profile) error
	CreateSkill(ctx context.Context, s *models.Skill) error
	CreateProject(ctx context.Context, p *models.Project) error
	CreateExperience(ctx context.Context, e *models.Experience) error
}

type portfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) PortfolioRepository {
	return &portfolioRepo{db: db}
}

// GetProfile returns the first profile row. The table is expected to hold
// at most one row; an empty table maps to utils.ErrNotFound.
func (r *portfolioRepo) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Order("id").
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List reads order by id so responses are stable across engines: rows come
// back in the order the seed inserted them.
func (r *portfolioRepo) GetSkills(ctx context.Context) ([]models.Skill, error) {
	var rows []models.Skill
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *portfolioRepo) GetProjects(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *portfolioRepo) GetExperience(ctx context.Context) ([]models.Experience, error) {
	var rows []models.Experience
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *portfolioRepo) CreateProfile(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *portfolioRepo) CreateSkill(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *portfolioRepo) CreateProject(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *portfolioRepo) CreateExperience(ctx context.Context, e *models.Experience) error {
	return r.db.WithContext(ctx).Create(e).Error
}
