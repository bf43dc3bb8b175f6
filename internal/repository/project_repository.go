package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/model"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateID    = errors.New("duplicate id")
)

type ProjectRepository struct {
	store *db.Store
}

func NewProjectRepository(store *db.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Projects(), nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	project, ok := r.store.Project(strings.TrimSpace(id))
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &project, nil
}

// Create puts the project at the head of the collection, newest first.
func (r *ProjectRepository) Create(ctx context.Context, project model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, exists := r.store.Project(project.ID); exists {
		return ErrDuplicateID
	}
	r.store.PrependProject(project)
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.store.ReplaceProject(project) {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) Regions(ctx context.Context) ([]model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Regions(), nil
}
