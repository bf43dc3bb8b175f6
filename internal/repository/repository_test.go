package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/model"
)

func newStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.NewStore(db.Fixtures())
	require.NoError(t, err)
	return store
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newStore(t))

	project, err := repo.Get(ctx, " proj-005 ")
	require.NoError(t, err)
	assert.Equal(t, "proj-005", project.ID)

	_, err = repo.Get(ctx, "proj-999")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = repo.Create(ctx, model.Project{ID: "proj-005"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	require.NoError(t, repo.Create(ctx, model.Project{ID: "proj-100", Name: "Nova"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "proj-100", list[0].ID)

	err = repo.Update(ctx, model.Project{ID: "proj-404"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestProjectRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewProjectRepository(newStore(t))
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserAndProfileRepositories(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	users := NewUserRepository(store)
	profiles := NewProfileRepository(store)
	settings := NewSettingsRepository(store)

	require.NoError(t, users.Create(ctx, model.AdminUser{ID: "usr-100", Name: "Nova"}))
	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "usr-100", list[0].ID)
	assert.Len(t, list, 13)

	_, err = users.Get(ctx, "usr-404")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, profiles.Create(ctx, model.AdminProfile{ID: "prof-05", Name: "Auditor"}))
	all, err := profiles.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "prof-05", all[len(all)-1].ID)

	perms, err := profiles.Permissions(ctx)
	require.NoError(t, err)
	assert.Len(t, perms, 11)

	current, err := settings.Get(ctx)
	require.NoError(t, err)
	current.OrgName = "Prefeitura"
	require.NoError(t, settings.Save(ctx, current))
	saved, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", saved.OrgName)
}
