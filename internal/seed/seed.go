// Package seed populates an empty store with the default site content on
// first boot. The presence of a profile row is the idempotency marker: a
// store that already has one is left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/klarsen/folio/internal/repositories"
	"github.com/klarsen/folio/internal/utils"
	"github.com/klarsen/folio/internal/validation"
)

type Seeder struct {
	repo repositories.PortfolioRepository
	log  *logrus.Logger
}

func New(repo repositories.PortfolioRepository, log *logrus.Logger) *Seeder {
	return &Seeder{repo: repo, log: log}
}

// Run seeds the store if and only if no profile row exists. The four
// batches carry no cross-references and are inserted sequentially; a
// failure part-way leaves the profile in place, so the next startup will
// skip seeding rather than resume it.
func (s *Seeder) Run(ctx context.Context) error {
	_, err := s.repo.GetProfile(ctx)
	if err == nil {
		s.log.Info("content already present, skipping seed")
		return nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return fmt.Errorf("seed: checking for existing profile: %w", err)
	}

	s.log.Info("seeding database with default content")

	profile := defaultProfile()
	if verr := validation.Profile(&profile); verr != nil {
		return fmt.Errorf("seed: invalid default profile: %s", verr.Reason)
	}
	if err := s.repo.CreateProfile(ctx, &profile); err != nil {
		return fmt.Errorf("seed: inserting profile: %w", err)
	}

	skills := defaultSkills()
	for i := range skills {
		if verr := validation.Skill(&skills[i]); verr != nil {
			return fmt.Errorf("seed: invalid default skill %q: %s", skills[i].Name, verr.Reason)
		}
		if err := s.repo.CreateSkill(ctx, &skills[i]); err != nil {
			return fmt.Errorf("seed: inserting skill %q: %w", skills[i].Name, err)
		}
	}
	s.log.WithField("count", len(skills)).Info("seeded skills")

	projects := defaultProjects()
	for i := range projects {
		if verr := validation.Project(&projects[i]); verr != nil {
			return fmt.Errorf("seed: invalid default project %q: %s", projects[i].Title, verr.Reason)
		}
		if err := s.repo.CreateProject(ctx, &projects[i]); err != nil {
			return fmt.Errorf("seed: inserting project %q: %w", projects[i].Title, err)
		}
	}
	s.log.WithField("count", len(projects)).Info("seeded projects")

	experience := defaultExperience()
	for i := range experience {
		if verr := validation.Experience(&experience[i]); verr != nil {
			return fmt.Errorf("seed: invalid default experience %q: %s", experience[i].Company, verr.Reason)
		}
		if err := s.repo.CreateExperience(ctx, &experience[i]); err != nil {
			return fmt.Errorf("seed: inserting experience %q: %w", experience[i].Company, err)
		}
	}
	s.log.WithField("count", len(experience)).Info("seeded experience")

	s.log.Info("database seeded successfully")
	return nil
}
