// Copyright 2026 The CodeCircle Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"codecircle/internal/config"
	"codecircle/monitor"
	"codecircle/pkg/log"
	"codecircle/pkg/loop"
	"codecircle/platform/client"
	"codecircle/platform/model"
	"codecircle/platform/repository"
)

// Syncer runs the detached cross-service synchronization operations: AI
// config pushes and fixai service-mapping updates. Every operation is
// best-effort: failures are logged and counted, never retried, and never
// surfaced to the request that queued them.
type Syncer struct {
	logger   *log.Logger
	loop     *loop.TaskLoop
	wsRepo   *repository.WorkspaceRepository
	aiRepo   *repository.AIConfigRepository
	clients  *Clients
	services *config.ServicesConfig
}

func NewSyncer(wsRepo *repository.WorkspaceRepository, aiRepo *repository.AIConfigRepository, clients *Clients, services *config.ServicesConfig) *Syncer {
	return &Syncer{
		logger:   log.GetLogger("syncer"),
		loop:     loop.NewTaskLoop(100),
		wsRepo:   wsRepo,
		aiRepo:   aiRepo,
		clients:  clients,
		services: services,
	}
}

// Stop drains the queue briefly and stops the loop.
func (s *Syncer) Stop() {
	s.loop.Stop()
}

func (s *Syncer) enqueue(operation string, task loop.Task) {
	if err := s.loop.TryAddTask(task); err != nil {
		monitor.SyncTotal.WithLabelValues(operation, "dropped").Inc()
		s.logger.Warningf("drop %s task: %v", operation, err)
	}
}

func (s *Syncer) count(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	monitor.SyncTotal.WithLabelValues(operation, result).Inc()
}

func payloadFor(cfg *model.AIConfig) *client.AIConfigPayload {
	return &client.AIConfigPayload{
		ClaudeAPIKey:     cfg.APIKey,
		ClaudeBedrockURL: cfg.BaseURL,
		ClaudeModelID:    cfg.ModelID,
		ClaudeMaxTokens:  cfg.MaxTokens,
	}
}

// QueuePushAIConfig schedules PushAIConfig in the background.
func (s *Syncer) QueuePushAIConfig(cfg *model.AIConfig) {
	s.enqueue("push_ai_config", func(ctx context.Context) error {
		s.PushAIConfig(ctx, cfg)
		return nil
	})
}

// PushAIConfig writes the config to the fixai and code-parser orgs of the
// affected workspaces: only the owning workspace for a scoped config, every
// workspace for the global one.
func (s *Syncer) PushAIConfig(ctx context.Context, cfg *model.AIConfig) {
	var workspaces []*model.Workspace
	if cfg.WorkspaceID != nil {
		ws, err := s.wsRepo.GetByID(ctx, *cfg.WorkspaceID)
		if err != nil || ws == nil {
			s.logger.Warningf("push ai config: load workspace %s: %v", *cfg.WorkspaceID, err)
			return
		}
		workspaces = []*model.Workspace{ws}
	} else {
		var err error
		workspaces, err = s.wsRepo.List(ctx)
		if err != nil {
			s.logger.Warningf("push ai config: list workspaces: %v", err)
			return
		}
	}

	payload := payloadFor(cfg)
	for _, ws := range workspaces {
		if ws.FixAIOrgID != nil {
			err := s.clients.FixAI.PushAIConfig(ctx, *ws.FixAIOrgID, payload)
			s.count("push_ai_config", err)
			if err != nil {
				s.logger.Warningf("push ai config to fixai org %s failed: %v", *ws.FixAIOrgID, err)
			} else {
				s.logger.Infof("pushed ai config to fixai org %s", *ws.FixAIOrgID)
			}
		}
		if ws.CodeParserOrgID != nil {
			err := s.clients.CodeParser.PushAIConfig(ctx, *ws.CodeParserOrgID, payload)
			s.count("push_ai_config", err)
			if err != nil {
				s.logger.Warningf("push ai config to code parser org %s failed: %v", *ws.CodeParserOrgID, err)
			} else {
				s.logger.Infof("pushed ai config to code parser org %s", *ws.CodeParserOrgID)
			}
		}
	}
}

// QueuePushAIConfigToOrg schedules PushAIConfigToOrg in the background.
func (s *Syncer) QueuePushAIConfigToOrg(svc model.Service, orgID string) {
	s.enqueue("push_on_connect", func(ctx context.Context) error {
		s.PushAIConfigToOrg(ctx, svc, orgID)
		return nil
	})
}

// PushAIConfigToOrg writes the global config to a single org that was just
// connected. Nothing is pushed when no credential is stored yet.
func (s *Syncer) PushAIConfigToOrg(ctx context.Context, svc model.Service, orgID string) {
	cfg, err := s.aiRepo.GetGlobal(ctx)
	if err != nil {
		s.logger.Warningf("push on connect: load ai config: %v", err)
		return
	}
	if cfg == nil || cfg.APIKey == "" {
		return
	}

	payload := payloadFor(cfg)
	switch svc {
	case model.ServiceFixAI:
		err = s.clients.FixAI.PushAIConfig(ctx, orgID, payload)
	case model.ServiceCodeParser:
		err = s.clients.CodeParser.PushAIConfig(ctx, orgID, payload)
	default:
		return
	}
	s.count("push_on_connect", err)
	if err != nil {
		s.logger.Warningf("push ai config to %s org %s failed: %v", svc, orgID, err)
	} else {
		s.logger.Infof("pushed ai config to %s org %s on connect", svc, orgID)
	}
}

// QueueSyncServiceMappings schedules SyncServiceMappings in the background.
func (s *Syncer) QueueSyncServiceMappings(workspaceID string) {
	s.enqueue("sync_mappings", func(ctx context.Context) error {
		s.SyncServiceMappings(ctx, workspaceID)
		return nil
	})
}

// SyncServiceMappings patches the workspace's fixai org with the current
// link state, nulling out whatever is no longer connected.
func (s *Syncer) SyncServiceMappings(ctx context.Context, workspaceID string) {
	ws, err := s.wsRepo.GetByID(ctx, workspaceID)
	if err != nil || ws == nil {
		s.logger.Warningf("sync mappings: load workspace %s: %v", workspaceID, err)
		return
	}
	if ws.FixAIOrgID == nil {
		return
	}

	mappings := fixaiMappings(ws, s.services)
	err = s.clients.FixAI.UpdateOrganization(ctx, *ws.FixAIOrgID, mappings)
	s.count("sync_mappings", err)
	if err != nil {
		s.logger.Warningf("sync service mappings to fixai org %s failed: %v", *ws.FixAIOrgID, err)
	} else {
		s.logger.Infof("synced service mappings to fixai org %s", *ws.FixAIOrgID)
	}
}
