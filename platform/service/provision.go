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
	"fmt"

	"codecircle/internal/config"
	"codecircle/monitor"
	"codecircle/pkg/log"
	"codecircle/platform/client"
	"codecircle/platform/dto"
	"codecircle/platform/model"
)

// ProvisionResult carries the identifiers one provisioning run produced.
// Every field is overwritten on the workspace afterwards, so a failed
// service yields nil even if an earlier run had linked it.
type ProvisionResult struct {
	FixAIOrgID       *string
	MetricsOrgID     *string
	LogsOrgID        *string
	CodeParserOrgID  *string
	CodeParserRepoID *string
	Errors           []string
}

// Provisioner runs the per-service provisioning sequences for a workspace.
//
// Services are provisioned in a fixed order with full failure isolation: a
// failing service contributes a labeled error string and the run moves on.
// FixAI always runs last so its creation payload can reference whatever the
// earlier steps managed to create.
type Provisioner struct {
	logger   *log.Logger
	clients  *Clients
	services *config.ServicesConfig
}

func NewProvisioner(clients *Clients, services *config.ServicesConfig) *Provisioner {
	return &Provisioner{
		logger:   log.GetLogger("provision"),
		clients:  clients,
		services: services,
	}
}

func (p *Provisioner) count(service string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	monitor.ProvisionTotal.WithLabelValues(service, result).Inc()
}

// Run provisions every configured service for the workspace. It never
// returns an error: per-service failures are collected as labeled strings in
// the result and the caller derives workspace status from them.
func (p *Provisioner) Run(ctx context.Context, ws *model.Workspace, cfgs *dto.ProvisionConfigs) *ProvisionResult {
	result := &ProvisionResult{}

	if cfgs.Metrics != nil {
		orgID, err := p.clients.Metrics.Provision(ctx, ws.Name, ws.Slug, cfgs.Metrics)
		p.count("metrics", err)
		if err != nil {
			p.logger.Errorf("provision metrics for workspace %s failed: %v", ws.ID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("Metrics: %v", err))
		} else {
			result.MetricsOrgID = &orgID
		}
	}

	if cfgs.Logs != nil {
		orgID, err := p.clients.Logs.Provision(ctx, ws.Name, ws.Slug, cfgs.Logs)
		p.count("logs", err)
		if err != nil {
			p.logger.Errorf("provision logs for workspace %s failed: %v", ws.ID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("Logs: %v", err))
		} else {
			result.LogsOrgID = &orgID
		}
	}

	if cfgs.Code != nil {
		orgID, repoID, err := p.clients.CodeParser.Provision(ctx, ws.Name, cfgs.Code)
		p.count("code_parser", err)
		if err != nil {
			p.logger.Errorf("provision code parser for workspace %s failed: %v", ws.ID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("Code: %v", err))
		} else {
			result.CodeParserOrgID = &orgID
			result.CodeParserRepoID = &repoID
		}
	}

	// FixAI is the core agent and is always provisioned. During provisioning
	// the base URLs are always sent; only missing org/repo ids become null.
	mappings := client.ServiceMappings{
		CodeParserBaseURL:      &p.services.CodeParserURL,
		CodeParserOrgID:        result.CodeParserOrgID,
		CodeParserRepoID:       result.CodeParserRepoID,
		MetricsExplorerBaseURL: &p.services.MetricsExplorerURL,
		MetricsExplorerOrgID:   result.MetricsOrgID,
		LogsExplorerBaseURL:    &p.services.LogsExplorerURL,
		LogsExplorerOrgID:      result.LogsOrgID,
	}
	orgID, err := p.clients.FixAI.Provision(ctx, ws.Name, ws.Slug, mappings)
	p.count("fixai", err)
	if err != nil {
		p.logger.Errorf("provision fixai for workspace %s failed: %v", ws.ID, err)
		result.Errors = append(result.Errors, fmt.Sprintf("FixAI: %v", err))
	} else {
		result.FixAIOrgID = &orgID
	}

	return result
}
