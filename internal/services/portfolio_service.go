package services

import (
	"context"
	"errors"
	"time"

	"github.com/klarsen/folio/internal/cache"
	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/repositories"
	"github.com/klarsen/folio/internal/utils"
)

// content changes only at seed time, so a short TTL is purely a safety net
const contentTTL = 5 * time.Minute

type PortfolioService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	GetSkills(ctx context.Context) ([]models.Skill, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetExperience(ctx context.Context) ([]models.Experience, error)
}

type portfolioService struct {
	repo  repositories.PortfolioRepository
	cache cache.Cache // optional; nil disables caching
}

func NewPortfolioService(repo repositories.PortfolioRepository, c cache.Cache) PortfolioService {
	return &portfolioService{repo: repo, cache: c}
}

func (s *portfolioService) GetProfile(ctx context.Context) (*models.Profile, error) {
	const op = "PortfolioService.GetProfile"

	if s.cache != nil {
		var cached models.Profile
		if hit, _ := s.cache.GetJSON(ctx, "profile", &cached); hit {
			return &cached, nil
		}
	}

	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "profile", p, contentTTL)
	}
	return p, nil
}

func (s *portfolioService) GetSkills(ctx context.Context) ([]models.Skill, error) {
	const op = "PortfolioService.GetSkills"

	if s.cache != nil {
		var cached []models.Skill
		if hit, _ := s.cache.GetJSON(ctx, "skills", &cached); hit {
			return cached, nil
		}
	}

	rows, err := s.repo.GetSkills(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "skills", rows, contentTTL)
	}
	return rows, nil
}

func (s *portfolioService) GetProjects(ctx context.Context) ([]models.Project, error) {
	const op = "PortfolioService.GetProjects"

	if s.cache != nil {
		var cached []models.Project
		if hit, _ := s.cache.GetJSON(ctx, "projects", &cached); hit {
			return cached, nil
		}
	}

	rows, err := s.repo.GetProjects(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load projects", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "projects", rows, contentTTL)
	}
	return rows, nil
}

func (s *portfolioService) GetExperience(ctx context.Context) ([]models.Experience, error) {
	const op = "PortfolioService.GetExperience"

	if s.cache != nil {
		var cached []models.Experience
		if hit, _ := s.cache.GetJSON(ctx, "experience", &cached); hit {
			return cached, nil
		}
	}

	rows, err := s.repo.GetExperience(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load experience", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "experience", rows, contentTTL)
	}
	return rows, nil
}
