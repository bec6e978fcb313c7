package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive for the test
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

func TestGetProfile_Empty(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepo(newTestDB(t))

	_, err := repo.GetProfile(ctx)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetProfile_ReturnsFirstRow(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepo(newTestDB(t))

	require.NoError(t, repo.CreateProfile(ctx, &models.Profile{
		Name:    "Jane Doe",
		Title:   "Senior Full-Stack Developer",
		Bio:     "bio",
		Summary: "summary",
	}))

	p, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", p.Name)
	require.NotZero(t, p.ID)
	require.Nil(t, p.AvatarURL)
}

func TestGetSkills_EmptyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepo(newTestDB(t))

	rows, err := repo.GetSkills(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestProjectRoundTrip_PreservesTechStackOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepo(newTestDB(t))

	require.NoError(t, repo.CreateProject(ctx, &models.Project{
		Title:       "E-Commerce Platform",
		Description: "A full-featured online store.",
		TechStack:   []string{"React", "Node.js", "Stripe"},
		Outcome:     "Increased sales by 25%.",
	}))

	rows, err := repo.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"React", "Node.js", "Stripe"}, []string(rows[0].TechStack))
	require.False(t, rows[0].Featured, "featured must default to false")
}

func TestGetExperience_OrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPortfolioRepo(newTestDB(t))

	end := "2021"
	first := models.Experience{
		Company: "Tech Solutions Inc.", Role: "Senior Frontend Engineer",
		StartDate: "2021", Description: []string{"Led migration to React."},
	}
	second := models.Experience{
		Company: "Creative Digital Agency", Role: "Full Stack Developer",
		StartDate: "2018", EndDate: &end, Description: []string{"Launched 15+ client sites."},
	}
	require.NoError(t, repo.CreateExperience(ctx, &first))
	require.NoError(t, repo.CreateExperience(ctx, &second))

	rows, err := repo.GetExperience(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Tech Solutions Inc.", rows[0].Company)
	require.Nil(t, rows[0].EndDate)
	require.Equal(t, "Creative Digital Agency", rows[1].Company)
	require.Equal(t, "2021", *rows[1].EndDate)
	require.Equal(t, []string{"Launched 15+ client sites."}, []string(rows[1].Description))
}
