package service

import (
	"context"
	"os"

	"codecircle/pkg/log"
	"codecircle/platform/dto"
	"codecircle/platform/model"
	"codecircle/platform/repository"
	"codecircle/platform/vo"
)

type AIConfigService interface {
	// Get returns the config for the workspace, or the global default when
	// workspaceID is nil. The row is created lazily on first access.
	Get(ctx context.Context, workspaceID *string) (*vo.AIConfigVo, error)
	Save(ctx context.Context, workspaceID *string, req *dto.AIConfigUpdate) (*vo.AIConfigVo, error)
	// Raw exposes the global config including the credential, for sibling
	// services that bootstrap from the platform.
	Raw(ctx context.Context) (*vo.RawAIConfigVo, error)
}

type aiConfigService struct {
	logger *log.Logger
	repo   *repository.AIConfigRepository
	wsRepo *repository.WorkspaceRepository
	syncer *Syncer
}

func NewAIConfigService(repo *repository.AIConfigRepository, wsRepo *repository.WorkspaceRepository, syncer *Syncer) AIConfigService {
	return &aiConfigService{
		logger: log.GetLogger("aiconfig"),
		repo:   repo,
		wsRepo: wsRepo,
		syncer: syncer,
	}
}

// getOrCreateGlobal returns the global default row, seeding it from the
// environment on first access.
func (a *aiConfigService) getOrCreateGlobal(ctx context.Context) (*model.AIConfig, error) {
	cfg, err := a.repo.GetGlobal(ctx)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	provider := model.ProviderClaude
	if os.Getenv("CLAUDE_BEDROCK_URL") != "" {
		provider = model.ProviderBedrock
	}
	cfg = &model.AIConfig{
		Provider:  provider,
		APIKey:    os.Getenv("CLAUDE_API_KEY"),
		BaseURL:   os.Getenv("CLAUDE_BEDROCK_URL"),
		ModelID:   os.Getenv("CLAUDE_MODEL_ID"),
		MaxTokens: 4096,
	}
	if err := a.repo.Create(ctx, cfg); err != nil {
		// A concurrent first access may have seeded the row between the
		// read and the create; the scope key constraint rejects ours.
		if existing, gerr := a.repo.GetGlobal(ctx); gerr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	a.logger.Infof("ai config seeded from environment")
	return cfg, nil
}

// getOrCreate resolves the row for the scope. A new workspace row inherits
// provider, base URL and model from the global default but never its
// credential.
func (a *aiConfigService) getOrCreate(ctx context.Context, workspaceID *string) (*model.AIConfig, error) {
	if workspaceID == nil {
		return a.getOrCreateGlobal(ctx)
	}

	ws, err := a.wsRepo.GetByID(ctx, *workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrNotFound
	}

	cfg, err := a.repo.GetByWorkspace(ctx, *workspaceID)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	global, err := a.getOrCreateGlobal(ctx)
	if err != nil {
		return nil, err
	}
	cfg = &model.AIConfig{
		WorkspaceID: workspaceID,
		Provider:    global.Provider,
		BaseURL:     global.BaseURL,
		ModelID:     global.ModelID,
		MaxTokens:   global.MaxTokens,
	}
	if err := a.repo.Create(ctx, cfg); err != nil {
		if existing, gerr := a.repo.GetByWorkspace(ctx, *workspaceID); gerr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (a *aiConfigService) Get(ctx context.Context, workspaceID *string) (*vo.AIConfigVo, error) {
	cfg, err := a.getOrCreate(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return vo.NewAIConfigVo(cfg), nil
}

func (a *aiConfigService) Save(ctx context.Context, workspaceID *string, req *dto.AIConfigUpdate) (*vo.AIConfigVo, error) {
	cfg, err := a.getOrCreate(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.Provider != "" {
		cfg.Provider = model.AIProvider(req.Provider)
	}
	if req.APIKey != nil {
		cfg.APIKey = *req.APIKey
	}
	if req.BaseURL != nil {
		cfg.BaseURL = *req.BaseURL
	}
	if req.ModelID != nil {
		cfg.ModelID = *req.ModelID
	}
	if req.MaxTokens > 0 {
		cfg.MaxTokens = req.MaxTokens
	}

	if err := a.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	a.logger.Infof("ai config updated (provider=%s, model=%s)", cfg.Provider, cfg.ModelID)

	a.syncer.QueuePushAIConfig(cfg)

	return vo.NewAIConfigVo(cfg), nil
}

func (a *aiConfigService) Raw(ctx context.Context) (*vo.RawAIConfigVo, error) {
	cfg, err := a.getOrCreateGlobal(ctx)
	if err != nil {
		return nil, err
	}
	return vo.NewRawAIConfigVo(cfg), nil
}
