package service

import (
	"context"
	"testing"

	"codecircle/platform/dto"
	"codecircle/platform/model"
)

func newTestSyncer(e *env) *Syncer {
	return NewSyncer(e.wsRepo, e.aiRepo, e.clients, e.services)
}

func linkedWorkspace(t *testing.T, e *env, fixai, metrics, logs, code, repo *string) *model.Workspace {
	t.Helper()
	ws := &model.Workspace{
		Name:             "Acme",
		Slug:             "acme",
		Status:           model.StatusReady,
		FixAIOrgID:       fixai,
		MetricsOrgID:     metrics,
		LogsOrgID:        logs,
		CodeParserOrgID:  code,
		CodeParserRepoID: repo,
	}
	if err := e.wsRepo.Create(context.Background(), ws); err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	return ws
}

func str(s string) *string { return &s }

func connectReq(service, orgID string) *dto.ConnectServiceRequest {
	return &dto.ConnectServiceRequest{Service: service, OrgID: orgID}
}

func TestSyncServiceMappings(t *testing.T) {
	ctx := context.Background()

	t.Run("patches fixai with current links", func(t *testing.T) {
		e := newEnv(t)
		ws := linkedWorkspace(t, e, str("f-1"), str("m-1"), nil, str("c-1"), str("r-1"))

		newTestSyncer(e).SyncServiceMappings(ctx, ws.ID)

		patch := e.fixai.lastCall(t, "PATCH /api/v1/organizations/f-1")
		if patch["metrics_explorer_org_id"] != "m-1" {
			t.Fatalf("metrics org = %v", patch["metrics_explorer_org_id"])
		}
		if patch["code_parser_repo_id"] != "r-1" {
			t.Fatalf("code repo = %v", patch["code_parser_repo_id"])
		}
		// unlinked services go out as null, base url included
		if patch["logs_explorer_org_id"] != nil || patch["logs_explorer_base_url"] != nil {
			t.Fatalf("logs fields = %v / %v, want null", patch["logs_explorer_org_id"], patch["logs_explorer_base_url"])
		}
		if patch["metrics_explorer_base_url"] != e.services.MetricsExplorerURL {
			t.Fatalf("metrics base url = %v", patch["metrics_explorer_base_url"])
		}
	})

	t.Run("no fixai link means no call", func(t *testing.T) {
		e := newEnv(t)
		ws := linkedWorkspace(t, e, nil, str("m-1"), nil, nil, nil)

		newTestSyncer(e).SyncServiceMappings(ctx, ws.ID)

		if len(e.fixai.requests) != 0 {
			t.Fatalf("unexpected fixai calls: %v", e.fixai.requests)
		}
	})
}

func TestPushAIConfigToOrg(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when no credential stored", func(t *testing.T) {
		e := newEnv(t)
		syncer := newTestSyncer(e)

		syncer.PushAIConfigToOrg(ctx, model.ServiceFixAI, "f-1")

		if len(e.fixai.requests) != 0 {
			t.Fatalf("unexpected push without credential: %v", e.fixai.requests)
		}
	})

	t.Run("pushes global credential to the connected org", func(t *testing.T) {
		e := newEnv(t)
		cfg := &model.AIConfig{Provider: model.ProviderClaude, APIKey: "sk-ant-123", ModelID: "claude-sonnet-4", MaxTokens: 4096}
		if err := e.aiRepo.Create(ctx, cfg); err != nil {
			t.Fatalf("create config: %v", err)
		}

		newTestSyncer(e).PushAIConfigToOrg(ctx, model.ServiceCodeParser, "c-1")

		push := e.code.lastCall(t, "PUT /api/v1/orgs/c-1/ai-config")
		if push["claude_api_key"] != "sk-ant-123" {
			t.Fatalf("pushed key = %v", push["claude_api_key"])
		}
		if push["claude_max_tokens"] != float64(4096) {
			t.Fatalf("pushed max tokens = %v", push["claude_max_tokens"])
		}
	})
}

func TestPushAIConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("global config fans out to every linked workspace", func(t *testing.T) {
		e := newEnv(t)
		linkedWorkspace(t, e, str("f-1"), nil, nil, str("c-1"), nil)
		other := &model.Workspace{Name: "Other", Slug: "other", Status: model.StatusReady, FixAIOrgID: str("f-2")}
		if err := e.wsRepo.Create(ctx, other); err != nil {
			t.Fatalf("create: %v", err)
		}

		cfg := &model.AIConfig{Provider: model.ProviderClaude, APIKey: "sk-ant-123", MaxTokens: 4096}
		newTestSyncer(e).PushAIConfig(ctx, cfg)

		if len(e.fixai.calls("PUT /api/v1/organizations/f-1/ai-config")) != 1 {
			t.Fatal("missing push to f-1")
		}
		if len(e.fixai.calls("PUT /api/v1/organizations/f-2/ai-config")) != 1 {
			t.Fatal("missing push to f-2")
		}
		if len(e.code.calls("PUT /api/v1/orgs/c-1/ai-config")) != 1 {
			t.Fatal("missing push to c-1")
		}
	})

	t.Run("scoped config only reaches its own workspace", func(t *testing.T) {
		e := newEnv(t)
		ws := linkedWorkspace(t, e, str("f-1"), nil, nil, nil, nil)
		other := &model.Workspace{Name: "Other", Slug: "other", Status: model.StatusReady, FixAIOrgID: str("f-2")}
		if err := e.wsRepo.Create(ctx, other); err != nil {
			t.Fatalf("create: %v", err)
		}

		cfg := &model.AIConfig{WorkspaceID: &ws.ID, Provider: model.ProviderClaude, APIKey: "sk-ant-123", MaxTokens: 4096}
		newTestSyncer(e).PushAIConfig(ctx, cfg)

		if len(e.fixai.calls("PUT /api/v1/organizations/f-1/ai-config")) != 1 {
			t.Fatal("missing push to f-1")
		}
		if len(e.fixai.calls("PUT /api/v1/organizations/f-2/ai-config")) != 0 {
			t.Fatal("scoped config must not reach other workspaces")
		}
	})

	t.Run("push failures are swallowed", func(t *testing.T) {
		e := newEnv(t)
		linkedWorkspace(t, e, str("f-1"), nil, nil, nil, nil)
		e.fixai.fail["PUT /api/v1/organizations/f-1/ai-config"] = 500

		cfg := &model.AIConfig{Provider: model.ProviderClaude, APIKey: "sk-ant-123", MaxTokens: 4096}
		// must not panic or propagate anything
		newTestSyncer(e).PushAIConfig(ctx, cfg)
	})
}

func waitForQueueDrain(t *testing.T, s *Syncer) {
	t.Helper()
	// Stop waits for the in-flight task and drains the queue.
	s.Stop()
}

func TestConnectTriggersSync(t *testing.T) {
	ctx := context.Background()

	t.Run("connecting metrics patches the linked fixai org", func(t *testing.T) {
		e := newEnv(t)
		syncer := newTestSyncer(e)
		svc := NewWorkspaceService(e.wsRepo, e.clients, e.services, syncer)

		ws := linkedWorkspace(t, e, str("f-1"), nil, nil, nil, nil)

		_, err := svc.Connect(ctx, ws.ID, connectReq("metrics", "m-9"))
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		waitForQueueDrain(t, syncer)

		patch := e.fixai.lastCall(t, "PATCH /api/v1/organizations/f-1")
		if patch["metrics_explorer_org_id"] != "m-9" {
			t.Fatalf("patched metrics org = %v", patch["metrics_explorer_org_id"])
		}
	})

	t.Run("disconnect nulls the mapping", func(t *testing.T) {
		e := newEnv(t)
		syncer := newTestSyncer(e)
		svc := NewWorkspaceService(e.wsRepo, e.clients, e.services, syncer)

		ws := linkedWorkspace(t, e, str("f-1"), str("m-1"), nil, nil, nil)

		_, err := svc.Disconnect(ctx, ws.ID, "metrics")
		if err != nil {
			t.Fatalf("disconnect: %v", err)
		}
		waitForQueueDrain(t, syncer)

		patch := e.fixai.lastCall(t, "PATCH /api/v1/organizations/f-1")
		if patch["metrics_explorer_org_id"] != nil {
			t.Fatalf("patched metrics org = %v, want null", patch["metrics_explorer_org_id"])
		}
	})
}
