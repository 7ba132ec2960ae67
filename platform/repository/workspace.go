package repository

import (
	"context"

	"codecircle/platform/model"

	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	*BaseRepository[model.Workspace]
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{
		BaseRepository: NewBaseRepository[model.Workspace](db),
	}
}

// GetBySlug returns the workspace with the slug, or nil when absent.
func (r *WorkspaceRepository) GetBySlug(ctx context.Context, slug string) (*model.Workspace, error) {
	return r.First(ctx, WithSlug(slug))
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]*model.Workspace, error) {
	return r.Find(ctx, OrderByCreatedDesc())
}
