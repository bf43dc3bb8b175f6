package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/model"
)

func fixedIDs(ids ...string) func() uuid.UUID {
	next := 0
	return func() uuid.UUID {
		id := uuid.MustParse(ids[next%len(ids)])
		next++
		return id
	}
}

func newProjectInput() ProjectInput {
	return ProjectInput{
		Name:            "Nova Praca",
		Location:        "Jr. Los Pinos 120",
		City:            "Rimac",
		District:        "Region Centro",
		Status:          model.StatusPlanned,
		Contractor:      "Constructora Andina",
		StartDate:       "2026-03-01",
		ExpectedEndDate: "2026-11-30",
		Budget:          "S/ 1.200.000",
		Category:        "Espaco publico",
	}
}

func TestAdminService_CreateProject(t *testing.T) {
	s := newServices(t)
	s.admin.newID = fixedIDs("0102abcd-0000-4000-8000-000000000001")
	ctx := context.Background()

	created, err := s.admin.CreateProject(ctx, newProjectInput())
	require.NoError(t, err)

	assert.Equal(t, "proj-0102abcd-0000-4000-8000-000000000001", created.ID)
	assert.Regexp(t, `^CP-2026-[1-9]\d{3}$`, created.ContractID)
	assert.Equal(t, "CP-2026-1258", created.ContractID)
	assert.Equal(t, "2026-02-10", created.LastUpdate)
	assert.InDelta(t, -12.05, created.Lat, 1e-9)
	assert.InDelta(t, -77.04, created.Lng, 1e-9)
	assert.NotNil(t, created.Updates)
	assert.Empty(t, created.Updates)

	page, err := s.admin.ListProjects(ctx, ProjectFilter{}, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, page.Items[0].ID)
	assert.Equal(t, 13, page.Total)
}

func TestAdminService_CreateProject_ContractIDRange(t *testing.T) {
	cases := map[string]string{
		"00000000-0000-4000-8000-000000000001": "CP-2026-1000",
		"002a0000-0000-4000-8000-000000000002": "CP-2026-1042",
		"23280000-0000-4000-8000-000000000003": "CP-2026-1000",
		"ffff0000-0000-4000-8000-000000000004": "CP-2026-3535",
	}
	for raw, want := range cases {
		s := newServices(t)
		s.admin.newID = fixedIDs(raw)
		created, err := s.admin.CreateProject(context.Background(), newProjectInput())
		require.NoError(t, err)
		assert.Equal(t, want, created.ContractID, raw)
	}
}

func TestAdminService_CreateProject_Coordinates(t *testing.T) {
	s := newServices(t)
	in := newProjectInput()
	lat, lng := -12.1, -77.0
	in.Lat, in.Lng = &lat, &lng

	created, err := s.admin.CreateProject(context.Background(), in)
	require.NoError(t, err)
	assert.InDelta(t, lat, created.Lat, 1e-9)
	assert.InDelta(t, lng, created.Lng, 1e-9)
}

func TestAdminService_CreateProject_Invalid(t *testing.T) {
	s := newServices(t)
	in := newProjectInput()
	in.Status = "finished"
	in.Progress = 120

	_, err := s.admin.CreateProject(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := s.portal.Projects(context.Background(), ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 12)
}

func TestAdminService_UpdateProject_RecordsUpdate(t *testing.T) {
	s := newServices(t)
	s.admin.newID = fixedIDs("00000000-0000-4000-8000-0000000000aa")
	ctx := context.Background()

	before, err := s.portal.Project(ctx, "proj-008")
	require.NoError(t, err)

	in := ProjectInput{
		Name:              before.Name,
		Location:          before.Location,
		City:              before.City,
		District:          before.District,
		Status:            model.StatusInProgress,
		Progress:          before.Progress,
		Contractor:        before.Contractor,
		StartDate:         before.StartDate,
		ExpectedEndDate:   before.ExpectedEndDate,
		Budget:            before.Budget,
		Category:          before.Category,
		UpdateTitle:       "  Obras retomadas  ",
		UpdateDescription: "Equipe de campo mobilizada.",
	}
	updated, err := s.admin.UpdateProject(ctx, "proj-008", in)
	require.NoError(t, err)

	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, "2026-02-10", updated.LastUpdate)
	require.Len(t, updated.Updates, len(before.Updates)+1)
	first := updated.Updates[0]
	assert.Equal(t, "upd-00000000-0000-4000-8000-0000000000aa", first.ID)
	assert.Equal(t, "Obras retomadas", first.Title)
	assert.Equal(t, "Admin", first.Author)
	assert.Equal(t, "2026-02-10", first.Date)

	stored, err := s.portal.Project(ctx, "proj-008")
	require.NoError(t, err)
	assert.Equal(t, updated.Updates, stored.Updates)
	assert.InDelta(t, before.Lat, stored.Lat, 1e-9)
}

func TestAdminService_UpdateProject_WithoutTitleKeepsLastUpdate(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	before, err := s.portal.Project(ctx, "proj-004")
	require.NoError(t, err)

	in := ProjectInput{
		Name:     "Renamed",
		City:     before.City,
		District: before.District,
		Status:   before.Status,
		Progress: before.Progress,
	}
	updated, err := s.admin.UpdateProject(ctx, "proj-004", in)
	require.NoError(t, err)
	assert.Equal(t, before.LastUpdate, updated.LastUpdate)
	assert.Len(t, updated.Updates, len(before.Updates))
}

func TestAdminService_UpdateProject_NotFound(t *testing.T) {
	s := newServices(t)
	_, err := s.admin.UpdateProject(context.Background(), "proj-999", newProjectInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminService_ListProjectsPaginates(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	page, err := s.admin.ListProjects(ctx, ProjectFilter{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "proj-007", page.Items[0].ID)

	page, err = s.admin.ListProjects(ctx, ProjectFilter{Status: string(model.StatusCompleted)}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"proj-004", "proj-009"}, ids(page.Items))
}

func TestAdminService_Users(t *testing.T) {
	s := newServices(t)
	s.admin.newID = fixedIDs("00000000-0000-4000-8000-0000000000bb")
	ctx := context.Background()

	page, err := s.admin.ListUsers(ctx, UserFilter{Role: string(model.RoleManager)}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)

	created, err := s.admin.CreateUser(ctx, UserInput{
		Name:  " Lucia Paredes ",
		Email: "Lucia.Paredes@Portal.gov",
		Role:  model.RoleFiscal,
	})
	require.NoError(t, err)
	assert.Equal(t, "usr-00000000-0000-4000-8000-0000000000bb", created.ID)
	assert.Equal(t, "Lucia Paredes", created.Name)
	assert.Equal(t, "lucia.paredes@portal.gov", created.Email)
	assert.Equal(t, model.UserActive, created.Status)
	assert.Equal(t, "2026-02-10", created.CreatedAt)
	assert.Nil(t, created.LastLogin)

	page, err = s.admin.ListUsers(ctx, UserFilter{}, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, page.Items[0].ID)
	assert.Equal(t, 13, page.Total)
}

func TestAdminService_UserEmailConflict(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.admin.CreateUser(ctx, UserInput{Name: "Dup", Email: "MARIA.TORRES@portal.gov", Role: model.RoleViewer})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.admin.UpdateUser(ctx, "usr-002", UserInput{Name: "Carlos", Email: "maria.torres@portal.gov", Role: model.RoleManager})
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := s.admin.UpdateUser(ctx, "usr-002", UserInput{Name: "Carlos M.", Email: "carlos.mendez@portal.gov", Role: model.RoleAdmin, Status: model.UserInactive})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, model.UserInactive, updated.Status)
	assert.Equal(t, "2025-02-20", updated.CreatedAt)
}

func TestAdminService_UserValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.admin.CreateUser(ctx, UserInput{Name: "X", Email: "not-an-email", Role: model.RoleViewer})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.admin.CreateUser(ctx, UserInput{Name: "X", Email: "x@portal.gov", Role: "root"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.admin.UpdateUser(ctx, "usr-404", UserInput{Name: "X", Email: "x@portal.gov", Role: model.RoleViewer})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminService_Profiles(t *testing.T) {
	s := newServices(t)
	s.admin.newID = fixedIDs("00000000-0000-4000-8000-0000000000cc")
	ctx := context.Background()

	created, err := s.admin.CreateProfile(ctx, ProfileInput{
		Name:        "Auditor",
		Permissions: []string{"dashboard.view", "obras.view", "dashboard.view"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard.view", "obras.view"}, created.Permissions)
	assert.Equal(t, 0, created.UsersCount)

	profiles, err := s.admin.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 5)
	assert.Equal(t, created.ID, profiles[4].ID)

	updated, err := s.admin.UpdateProfile(ctx, "prof-04", ProfileInput{Name: "Leitura", Permissions: []string{"obras.view"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"obras.view"}, updated.Permissions)
	assert.Equal(t, 2, updated.UsersCount)

	_, err = s.admin.CreateProfile(ctx, ProfileInput{Name: "Bad", Permissions: []string{"obras.fly"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.admin.UpdateProfile(ctx, "prof-99", ProfileInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminService_PermissionGroups(t *testing.T) {
	s := newServices(t)
	groups, err := s.admin.PermissionGroups(context.Background())
	require.NoError(t, err)

	modules := make([]string, len(groups))
	total := 0
	for i, g := range groups {
		modules[i] = g.Module
		total += len(g.Permissions)
	}
	assert.Equal(t, []string{"Dashboard", "Obras", "Usuarios", "Perfis", "Configuracoes"}, modules)
	assert.Equal(t, 11, total)
	assert.Len(t, groups[1].Permissions, 4)
}

func TestAdminService_Settings(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	current, err := s.admin.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Portal de Obras Municipal", current.OrgName)

	current.OrgName = "  Prefeitura  "
	current.WeeklyReport = !current.WeeklyReport
	saved, err := s.admin.SaveSettings(ctx, current)
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", saved.OrgName)

	reloaded, err := s.admin.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, reloaded)

	bad := reloaded
	bad.OrgName = ""
	bad.MinPasswordLength = 2
	_, err = s.admin.SaveSettings(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	after, err := s.admin.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", after.OrgName)
}
