package service

import (
	"context"
	"testing"

	"codecircle/platform/dto"
	"codecircle/platform/model"
	"codecircle/platform/repository"
)

func newAIConfigService(e *env) AIConfigService {
	syncer := NewSyncer(e.wsRepo, e.aiRepo, e.clients, e.services)
	return NewAIConfigService(e.aiRepo, e.wsRepo, syncer)
}

func TestAIConfigService(t *testing.T) {
	ctx := context.Background()

	t.Run("global config seeded from environment", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "http://bedrock-proxy:9000")
		t.Setenv("CLAUDE_MODEL_ID", "claude-sonnet-4")

		svc := newAIConfigService(e)
		cfg, err := svc.Get(ctx, nil)
		if err != nil {
			t.Fatalf("get: %v", err)
		}

		if cfg.Provider != string(model.ProviderBedrock) {
			t.Fatalf("provider = %q, want bedrock when a bedrock url is set", cfg.Provider)
		}
		if !cfg.APIKeySet {
			t.Fatal("expected api_key_set")
		}
		if cfg.APIKeyPreview == nil || *cfg.APIKeyPreview != "...34567890" {
			t.Fatalf("preview = %v", cfg.APIKeyPreview)
		}
		if cfg.BaseURL != "http://bedrock-proxy:9000" || cfg.ModelID != "claude-sonnet-4" {
			t.Fatalf("cfg = %+v", cfg)
		}
		if cfg.MaxTokens != 4096 {
			t.Fatalf("max tokens = %d, want 4096", cfg.MaxTokens)
		}
	})

	t.Run("provider defaults to claude without bedrock url", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "short")
		t.Setenv("CLAUDE_BEDROCK_URL", "")
		t.Setenv("CLAUDE_MODEL_ID", "")

		svc := newAIConfigService(e)
		cfg, err := svc.Get(ctx, nil)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if cfg.Provider != string(model.ProviderClaude) {
			t.Fatalf("provider = %q, want claude", cfg.Provider)
		}
		// keys of 8 chars or fewer never get a preview
		if cfg.APIKeyPreview != nil {
			t.Fatalf("preview = %v, want nil for short key", *cfg.APIKeyPreview)
		}
		if !cfg.APIKeySet {
			t.Fatal("expected api_key_set even without preview")
		}
	})

	t.Run("workspace config inherits defaults without the credential", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "http://bedrock-proxy:9000")
		t.Setenv("CLAUDE_MODEL_ID", "claude-sonnet-4")

		ws := &model.Workspace{Name: "Acme", Slug: "acme", Status: model.StatusSetup}
		if err := e.wsRepo.Create(ctx, ws); err != nil {
			t.Fatalf("create workspace: %v", err)
		}

		svc := newAIConfigService(e)
		cfg, err := svc.Get(ctx, &ws.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if cfg.Provider != string(model.ProviderBedrock) || cfg.BaseURL != "http://bedrock-proxy:9000" {
			t.Fatalf("cfg = %+v, want inherited defaults", cfg)
		}
		if cfg.APIKeySet {
			t.Fatal("workspace config must not inherit the credential")
		}

		row, err := e.aiRepo.GetByWorkspace(ctx, ws.ID)
		if err != nil || row == nil {
			t.Fatalf("scoped row not created: %v", err)
		}
		if row.APIKey != "" {
			t.Fatalf("api key = %q, want empty", row.APIKey)
		}
	})

	t.Run("repeated access keeps a single global row", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "")
		t.Setenv("CLAUDE_MODEL_ID", "")

		svc := newAIConfigService(e)
		if _, err := svc.Get(ctx, nil); err != nil {
			t.Fatalf("first get: %v", err)
		}
		if _, err := svc.Get(ctx, nil); err != nil {
			t.Fatalf("second get: %v", err)
		}

		count, err := e.aiRepo.Count(ctx, repository.GlobalScope())
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 1 {
			t.Fatalf("global rows = %d, want 1", count)
		}
	})

	t.Run("get for unknown workspace fails", func(t *testing.T) {
		e := newEnv(t)
		svc := newAIConfigService(e)

		id := "does-not-exist"
		if _, err := svc.Get(ctx, &id); err != ErrNotFound {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("save without api key keeps the stored credential", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "")
		t.Setenv("CLAUDE_MODEL_ID", "")

		svc := newAIConfigService(e)
		if _, err := svc.Get(ctx, nil); err != nil {
			t.Fatalf("seed: %v", err)
		}

		modelID := "claude-opus-4"
		cfg, err := svc.Save(ctx, nil, &dto.AIConfigUpdate{ModelID: &modelID})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if cfg.ModelID != modelID {
			t.Fatalf("model id = %q", cfg.ModelID)
		}
		if !cfg.APIKeySet || cfg.APIKeyPreview == nil || *cfg.APIKeyPreview != "...34567890" {
			t.Fatal("credential must survive a save without api_key")
		}
	})

	t.Run("save with api key replaces the credential", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "")
		t.Setenv("CLAUDE_MODEL_ID", "")

		svc := newAIConfigService(e)
		newKey := "sk-ant-abcdefghij"
		cfg, err := svc.Save(ctx, nil, &dto.AIConfigUpdate{APIKey: &newKey})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if cfg.APIKeyPreview == nil || *cfg.APIKeyPreview != "...cdefghij" {
			t.Fatalf("preview = %v", cfg.APIKeyPreview)
		}
	})

	t.Run("raw view exposes the credential", func(t *testing.T) {
		e := newEnv(t)
		t.Setenv("CLAUDE_API_KEY", "sk-ant-1234567890")
		t.Setenv("CLAUDE_BEDROCK_URL", "http://bedrock-proxy:9000")
		t.Setenv("CLAUDE_MODEL_ID", "claude-sonnet-4")

		svc := newAIConfigService(e)
		raw, err := svc.Raw(ctx)
		if err != nil {
			t.Fatalf("raw: %v", err)
		}
		if raw.ClaudeAPIKey != "sk-ant-1234567890" {
			t.Fatalf("raw key = %q", raw.ClaudeAPIKey)
		}
		if raw.ClaudeMaxTokens != 4096 {
			t.Fatalf("raw max tokens = %d", raw.ClaudeMaxTokens)
		}
	})
}
