package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/metrics"
	"github.com/nurpe/obras-portal/internal/model"
	"github.com/nurpe/obras-portal/internal/repository"
)

const adminAuthor = "Admin"

// Coordinates given to projects created without a location.
var defaultProjectCoords = model.LatLng{Lat: -12.05, Lng: -77.04}

type AdminService struct {
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	profiles *repository.ProfileRepository
	settings *repository.SettingsRepository
	cfg      *config.Config
	now      func() time.Time
	newID    func() uuid.UUID
}

func NewAdminService(
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	profiles *repository.ProfileRepository,
	settings *repository.SettingsRepository,
	cfg *config.Config,
) *AdminService {
	return &AdminService{
		projects: projects,
		users:    users,
		profiles: profiles,
		settings: settings,
		cfg:      cfg,
		now:      cfg.Clock(),
		newID:    uuid.New,
	}
}

type ProjectInput struct {
	Name            string              `json:"name" binding:"required"`
	Location        string              `json:"location"`
	City            string              `json:"city" binding:"required"`
	District        string              `json:"district" binding:"required"`
	Status          model.ProjectStatus `json:"status" binding:"required"`
	Progress        int                 `json:"progress"`
	Contractor      string              `json:"contractor"`
	StartDate       string              `json:"start_date"`
	ExpectedEndDate string              `json:"expected_end_date"`
	Budget          string              `json:"budget"`
	Category        string              `json:"category"`
	Lat             *float64            `json:"lat"`
	Lng             *float64            `json:"lng"`
	// A non-empty UpdateTitle on edit records a field update dated today.
	UpdateTitle       string `json:"update_title"`
	UpdateDescription string `json:"update_description"`
}

func (s *AdminService) today() string {
	return model.FormatDate(model.DateOnly(s.now()))
}

func (s *AdminService) ListProjects(ctx context.Context, filter ProjectFilter, page int) (Page[model.Project], error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return Page[model.Project]{}, err
	}
	regions, err := s.projects.Regions(ctx)
	if err != nil {
		return Page[model.Project]{}, err
	}
	filter.FoldAccents = filter.FoldAccents || s.cfg.Search.FoldAccents
	return Paginate(FilterProjects(all, regions, filter), page, s.cfg.Admin.ProjectsPageSize), nil
}

func (s *AdminService) CreateProject(ctx context.Context, input ProjectInput) (*model.Project, error) {
	id := s.newID()
	now := model.DateOnly(s.now())

	project := model.Project{
		ID:            "proj-" + id.String(),
		LastUpdate:    s.today(),
		Lat:           defaultProjectCoords.Lat,
		Lng:           defaultProjectCoords.Lng,
		ContractID:    fmt.Sprintf("CP-%d-%d", now.Year(), 1000+int(binary.BigEndian.Uint16(id[:2]))%9000),
		Updates:       []model.ProjectUpdate{},
		Milestones:    []model.ProjectMilestone{},
		GalleryImages: []string{},
	}
	applyProjectInput(&project, input)

	if err := model.Validate(project); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.projects.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("%w: project %s already exists", ErrConflict, project.ID)
		}
		return nil, err
	}
	metrics.IncrementAdminMutation("project", "create")
	return &project, nil
}

func (s *AdminService) UpdateProject(ctx context.Context, id string, input ProjectInput) (*model.Project, error) {
	current, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
		}
		return nil, err
	}

	project := current.Clone()
	applyProjectInput(&project, input)

	if title := strings.TrimSpace(input.UpdateTitle); title != "" {
		update := model.ProjectUpdate{
			ID:          "upd-" + s.newID().String(),
			Date:        s.today(),
			Title:       title,
			Description: strings.TrimSpace(input.UpdateDescription),
			Author:      adminAuthor,
		}
		project.Updates = append([]model.ProjectUpdate{update}, project.Updates...)
		project.LastUpdate = update.Date
	}

	if err := model.Validate(project); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
		}
		return nil, err
	}
	metrics.IncrementAdminMutation("project", "update")
	return &project, nil
}

func applyProjectInput(p *model.Project, in ProjectInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Location = strings.TrimSpace(in.Location)
	p.City = strings.TrimSpace(in.City)
	p.District = strings.TrimSpace(in.District)
	p.Status = in.Status
	p.Progress = in.Progress
	p.Contractor = strings.TrimSpace(in.Contractor)
	p.StartDate = strings.TrimSpace(in.StartDate)
	p.ExpectedEndDate = strings.TrimSpace(in.ExpectedEndDate)
	p.Budget = strings.TrimSpace(in.Budget)
	p.Category = strings.TrimSpace(in.Category)
	if in.Lat != nil {
		p.Lat = *in.Lat
	}
	if in.Lng != nil {
		p.Lng = *in.Lng
	}
}

type UserInput struct {
	Name   string           `json:"name" binding:"required"`
	Email  string           `json:"email" binding:"required"`
	Role   model.UserRole   `json:"role" binding:"required"`
	Status model.UserStatus `json:"status"`
}

func (s *AdminService) ListUsers(ctx context.Context, filter UserFilter, page int) (Page[model.AdminUser], error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return Page[model.AdminUser]{}, err
	}
	return Paginate(FilterUsers(all, filter), page, s.cfg.Admin.UsersPageSize), nil
}

// CreateUser registers an active account that has never logged in.
func (s *AdminService) CreateUser(ctx context.Context, input UserInput) (*model.AdminUser, error) {
	user := model.AdminUser{
		ID:        "usr-" + s.newID().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Role:      input.Role,
		Status:    model.UserActive,
		CreatedAt: s.today(),
	}
	if err := model.Validate(user); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.ensureUniqueEmail(ctx, user.ID, user.Email); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("%w: user %s already exists", ErrConflict, user.ID)
		}
		return nil, err
	}
	metrics.IncrementAdminMutation("user", "create")
	return &user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, input UserInput) (*model.AdminUser, error) {
	current, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, err
	}

	user := *current
	user.Name = strings.TrimSpace(input.Name)
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	user.Role = input.Role
	if input.Status != "" {
		user.Status = input.Status
	}
	if err := model.Validate(user); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.ensureUniqueEmail(ctx, user.ID, user.Email); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	metrics.IncrementAdminMutation("user", "update")
	return &user, nil
}

func (s *AdminService) ensureUniqueEmail(ctx context.Context, id, email string) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID != id && strings.EqualFold(u.Email, email) {
			return fmt.Errorf("%w: email %s is already in use", ErrConflict, email)
		}
	}
	return nil
}

type ProfileInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

func (s *AdminService) ListProfiles(ctx context.Context) ([]model.AdminProfile, error) {
	return s.profiles.List(ctx)
}

func (s *AdminService) CreateProfile(ctx context.Context, input ProfileInput) (*model.AdminProfile, error) {
	keys, err := s.checkPermissions(ctx, input.Permissions)
	if err != nil {
		return nil, err
	}
	profile := model.AdminProfile{
		ID:          "prof-" + s.newID().String(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Permissions: keys,
	}
	if err := model.Validate(profile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("%w: profile %s already exists", ErrConflict, profile.ID)
		}
		return nil, err
	}
	metrics.IncrementAdminMutation("profile", "create")
	return &profile, nil
}

func (s *AdminService) UpdateProfile(ctx context.Context, id string, input ProfileInput) (*model.AdminProfile, error) {
	current, err := s.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id)
		}
		return nil, err
	}
	keys, err := s.checkPermissions(ctx, input.Permissions)
	if err != nil {
		return nil, err
	}

	profile := current.Clone()
	profile.Name = strings.TrimSpace(input.Name)
	profile.Description = strings.TrimSpace(input.Description)
	profile.Permissions = keys
	if err := model.Validate(profile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	metrics.IncrementAdminMutation("profile", "update")
	return &profile, nil
}

// checkPermissions rejects unknown keys and drops repeated ones.
func (s *AdminService) checkPermissions(ctx context.Context, keys []string) ([]string, error) {
	perms, err := s.profiles.Permissions(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		known[p.Key] = struct{}{}
	}

	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, key)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}

type PermissionGroup struct {
	Module      string             `json:"module"`
	Permissions []model.Permission `json:"permissions"`
}

// PermissionGroups groups permissions by module in first-seen order.
func (s *AdminService) PermissionGroups(ctx context.Context) ([]PermissionGroup, error) {
	perms, err := s.profiles.Permissions(ctx)
	if err != nil {
		return nil, err
	}
	groups := []PermissionGroup{}
	index := make(map[string]int)
	for _, p := range perms {
		pos, ok := index[p.Module]
		if !ok {
			pos = len(groups)
			index[p.Module] = pos
			groups = append(groups, PermissionGroup{Module: p.Module})
		}
		groups[pos].Permissions = append(groups[pos].Permissions, p)
	}
	return groups, nil
}

func (s *AdminService) Settings(ctx context.Context) (model.PortalSettings, error) {
	return s.settings.Get(ctx)
}

func (s *AdminService) SaveSettings(ctx context.Context, settings model.PortalSettings) (model.PortalSettings, error) {
	settings.OrgName = strings.TrimSpace(settings.OrgName)
	settings.OrgEmail = strings.TrimSpace(settings.OrgEmail)
	if err := model.Validate(settings); err != nil {
		return model.PortalSettings{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return model.PortalSettings{}, err
	}
	metrics.IncrementAdminMutation("settings", "update")
	return settings, nil
}
