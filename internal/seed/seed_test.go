package seed

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Message{},
	))
	return db
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repositories.NewPortfolioRepo(db)

	require.NoError(t, New(repo, quietLogger()).Run(ctx))

	p, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", p.Name)

	var links models.SocialLinks
	require.NoError(t, json.Unmarshal(p.SocialLinks, &links))
	require.NotEmpty(t, links.GitHub)

	skills, err := repo.GetSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 10)

	projects, err := repo.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, []string{"React", "Node.js", "Stripe", "PostgreSQL"}, []string(projects[0].TechStack))

	experience, err := repo.GetExperience(ctx)
	require.NoError(t, err)
	require.Len(t, experience, 2)
}

func TestRun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repositories.NewPortfolioRepo(db)

	require.NoError(t, New(repo, quietLogger()).Run(ctx))
	require.NoError(t, New(repo, quietLogger()).Run(ctx))

	var profiles, skills, projects, experience int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Skill{}).Count(&skills).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, db.Model(&models.Experience{}).Count(&experience).Error)

	require.EqualValues(t, 1, profiles)
	require.EqualValues(t, 10, skills)
	require.EqualValues(t, 3, projects)
	require.EqualValues(t, 2, experience)
}
