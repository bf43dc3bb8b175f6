package repository

import (
	"context"
	"strings"

	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/model"
)

type UserRepository struct {
	store *db.Store
}

func NewUserRepository(store *db.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Users(), nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user, ok := r.store.User(strings.TrimSpace(id))
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.AdminUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, exists := r.store.User(user.ID); exists {
		return ErrDuplicateID
	}
	r.store.PrependUser(user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user model.AdminUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.store.ReplaceUser(user) {
		return ErrRecordNotFound
	}
	return nil
}

type ProfileRepository struct {
	store *db.Store
}

func NewProfileRepository(store *db.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.AdminProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Profiles(), nil
}

func (r *ProfileRepository) Get(ctx context.Context, id string) (*model.AdminProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	profile, ok := r.store.Profile(strings.TrimSpace(id))
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &profile, nil
}

// Create appends; profiles keep their creation order.
func (r *ProfileRepository) Create(ctx context.Context, profile model.AdminProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, exists := r.store.Profile(profile.ID); exists {
		return ErrDuplicateID
	}
	r.store.AppendProfile(profile)
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.AdminProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.store.ReplaceProfile(profile) {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepository) Permissions(ctx context.Context) ([]model.Permission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Permissions(), nil
}

type SettingsRepository struct {
	store *db.Store
}

func NewSettingsRepository(store *db.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.PortalSettings, error) {
	if err := ctx.Err(); err != nil {
		return model.PortalSettings{}, err
	}
	return r.store.Settings(), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings model.PortalSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.SaveSettings(settings)
	return nil
}
