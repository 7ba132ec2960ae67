package service

import (
	"context"
	"errors"
	"testing"

	"codecircle/platform/client"
	"codecircle/platform/dto"
	"codecircle/platform/model"
)

func newWorkspaceService(e *env) (WorkspaceService, *Syncer) {
	syncer := newTestSyncer(e)
	return NewWorkspaceService(e.wsRepo, e.clients, e.services, syncer), syncer
}

func TestWorkspaceService(t *testing.T) {
	ctx := context.Background()

	t.Run("create starts in setup", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		ws, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Acme", Slug: "acme"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if ws.Status != string(model.StatusSetup) {
			t.Fatalf("status = %q, want setup", ws.Status)
		}
		if ws.ServiceIDs.FixAIOrgID != nil {
			t.Fatal("new workspace must have no links")
		}
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		if _, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Acme", Slug: "acme"}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Other", Slug: "acme"}); err != ErrSlugTaken {
			t.Fatalf("err = %v, want ErrSlugTaken", err)
		}
	})

	t.Run("slug shape validated", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		for _, slug := range []string{"Acme", "acme_corp", "-acme", "acme-", "acme corp", ""} {
			if _, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Acme", Slug: slug}); err != ErrInvalidSlug {
				t.Fatalf("slug %q: err = %v, want ErrInvalidSlug", slug, err)
			}
		}
		if _, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Acme", Slug: "acme-corp-2"}); err != nil {
			t.Fatalf("valid slug rejected: %v", err)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		if _, err := svc.Get(ctx, "nope"); err != ErrNotFound {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("connect sets the right link", func(t *testing.T) {
		e := newEnv(t)
		svc, syncer := newWorkspaceService(e)
		defer syncer.Stop()

		ws, err := svc.Create(ctx, &dto.WorkspaceCreate{Name: "Acme", Slug: "acme"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		repoID := "r-1"
		got, err := svc.Connect(ctx, ws.ID, &dto.ConnectServiceRequest{Service: "code_parser", OrgID: "c-1", RepoID: &repoID})
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		if got.ServiceIDs.CodeParserOrgID == nil || *got.ServiceIDs.CodeParserOrgID != "c-1" {
			t.Fatalf("code org = %v", got.ServiceIDs.CodeParserOrgID)
		}
		if got.ServiceIDs.CodeParserRepoID == nil || *got.ServiceIDs.CodeParserRepoID != "r-1" {
			t.Fatalf("code repo = %v", got.ServiceIDs.CodeParserRepoID)
		}
	})

	t.Run("disconnect code parser clears the repo too", func(t *testing.T) {
		e := newEnv(t)
		svc, syncer := newWorkspaceService(e)
		defer syncer.Stop()

		ws := linkedWorkspace(t, e, nil, nil, nil, str("c-1"), str("r-1"))

		got, err := svc.Disconnect(ctx, ws.ID, "code_parser")
		if err != nil {
			t.Fatalf("disconnect: %v", err)
		}
		if got.ServiceIDs.CodeParserOrgID != nil || got.ServiceIDs.CodeParserRepoID != nil {
			t.Fatalf("links = %+v, want cleared", got.ServiceIDs)
		}
	})

	t.Run("disconnect unknown service", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		ws := linkedWorkspace(t, e, nil, nil, nil, nil, nil)
		if _, err := svc.Disconnect(ctx, ws.ID, "tracing"); err != ErrUnknownService {
			t.Fatalf("err = %v, want ErrUnknownService", err)
		}
	})
}

func TestCreateFixAIOrg(t *testing.T) {
	ctx := context.Background()
	req := &dto.CreateFixAIOrgRequest{Name: "Acme Agent", Slug: "acme-agent"}

	t.Run("creates and links", func(t *testing.T) {
		e := newEnv(t)
		svc, syncer := newWorkspaceService(e)
		defer syncer.Stop()

		ws := linkedWorkspace(t, e, nil, str("m-1"), nil, str("c-1"), str("r-1"))

		got, err := svc.CreateFixAIOrg(ctx, ws.ID, req)
		if err != nil {
			t.Fatalf("create fixai org: %v", err)
		}
		if got.ServiceIDs.FixAIOrgID == nil {
			t.Fatal("fixai org not linked")
		}

		payload := e.fixai.lastCall(t, "POST /api/v1/organizations")
		if payload["name"] != "Acme Agent" || payload["slug"] != "acme-agent" {
			t.Fatalf("payload = %v", payload)
		}
		if payload["metrics_explorer_org_id"] != "m-1" || payload["code_parser_repo_id"] != "r-1" {
			t.Fatalf("mappings = %v", payload)
		}
		// logs is unlinked: null org id and null base url
		if payload["logs_explorer_org_id"] != nil || payload["logs_explorer_base_url"] != nil {
			t.Fatalf("logs mapping = %v / %v, want null", payload["logs_explorer_org_id"], payload["logs_explorer_base_url"])
		}
	})

	t.Run("rejected when already linked", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		ws := linkedWorkspace(t, e, str("f-1"), str("m-1"), nil, nil, nil)
		if _, err := svc.CreateFixAIOrg(ctx, ws.ID, req); err != ErrFixAILinked {
			t.Fatalf("err = %v, want ErrFixAILinked", err)
		}
	})

	t.Run("rejected without supporting services", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)

		ws := linkedWorkspace(t, e, nil, nil, nil, nil, nil)
		if _, err := svc.CreateFixAIOrg(ctx, ws.ID, req); err != ErrNoLinkedServices {
			t.Fatalf("err = %v, want ErrNoLinkedServices", err)
		}
	})

	t.Run("upstream failure propagates and leaves no link", func(t *testing.T) {
		e := newEnv(t)
		svc, _ := newWorkspaceService(e)
		e.fixai.fail["POST /api/v1/organizations"] = 422

		ws := linkedWorkspace(t, e, nil, str("m-1"), nil, nil, nil)

		_, err := svc.CreateFixAIOrg(ctx, ws.ID, req)
		var upstream *client.UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("err = %v, want *UpstreamError", err)
		}
		if upstream.Status != 422 {
			t.Fatalf("status = %d, want 422", upstream.Status)
		}

		fresh, err := e.wsRepo.GetByID(ctx, ws.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if fresh.FixAIOrgID != nil {
			t.Fatal("failed creation must not link an org")
		}
	})
}
