package repository

import (
	"context"

	"codecircle/platform/model"

	"gorm.io/gorm"
)

type AIConfigRepository struct {
	*BaseRepository[model.AIConfig]
}

func NewAIConfigRepository(db *gorm.DB) *AIConfigRepository {
	return &AIConfigRepository{
		BaseRepository: NewBaseRepository[model.AIConfig](db),
	}
}

// GetGlobal returns the global default row (workspace_id IS NULL), or nil.
func (r *AIConfigRepository) GetGlobal(ctx context.Context) (*model.AIConfig, error) {
	return r.First(ctx, GlobalScope())
}

// GetByWorkspace returns the workspace-scoped row, or nil.
func (r *AIConfigRepository) GetByWorkspace(ctx context.Context, wsID string) (*model.AIConfig, error) {
	return r.First(ctx, WithWorkspaceID(wsID))
}
