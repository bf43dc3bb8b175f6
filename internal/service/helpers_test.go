package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/model"
	"github.com/nurpe/obras-portal/internal/repository"
)

var fixedNow = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

func fixtureProjects() []model.Project {
	return db.Fixtures().Projects
}

func fixtureRegions() []model.Region {
	return db.Fixtures().Regions
}

func ids(list []model.Project) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func refIDs(list []model.ProjectRef) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

type services struct {
	store  *db.Store
	cfg    *config.Config
	portal *PortalService
	admin  *AdminService
}

func newServices(t *testing.T) services {
	t.Helper()
	store, err := db.NewStore(db.Fixtures())
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Data.Today = "2026-02-10"

	projects := repository.NewProjectRepository(store)
	users := repository.NewUserRepository(store)
	return services{
		store:  store,
		cfg:    cfg,
		portal: NewPortalService(projects, users, cfg),
		admin: NewAdminService(
			projects,
			users,
			repository.NewProfileRepository(store),
			repository.NewSettingsRepository(store),
			cfg,
		),
	}
}
