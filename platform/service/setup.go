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
	"strings"

	"codecircle/pkg/log"
	"codecircle/platform/client"
	"codecircle/platform/dto"
	"codecircle/platform/model"
	"codecircle/platform/repository"
	"codecircle/platform/vo"
)

// SetupService drives the workspace setup wizard: per-step configuration
// saves, the provisioning run, and the all-in-one complete call.
type SetupService interface {
	SaveAIStep(ctx context.Context, id string, req *dto.AIStep) (*vo.WorkspaceVo, error)
	SaveMetricsStep(ctx context.Context, id string, req *dto.MetricsStep) (*vo.WorkspaceVo, error)
	SaveLogsStep(ctx context.Context, id string, req *dto.LogsStep) (*vo.WorkspaceVo, error)
	SaveCodeStep(ctx context.Context, id string, req *dto.CodeStep) (*vo.WorkspaceVo, error)
	Provision(ctx context.Context, id string) (*vo.WorkspaceVo, error)
	Complete(ctx context.Context, req *dto.SetupCompleteRequest) (*vo.WorkspaceVo, error)
}

type setupService struct {
	logger      *log.Logger
	repo        *repository.WorkspaceRepository
	provisioner *Provisioner
}

func NewSetupService(repo *repository.WorkspaceRepository, provisioner *Provisioner) SetupService {
	return &setupService{
		logger:      log.GetLogger("setup"),
		repo:        repo,
		provisioner: provisioner,
	}
}

func (s *setupService) load(ctx context.Context, id string) (*model.Workspace, error) {
	ws, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrNotFound
	}
	return ws, nil
}

func (s *setupService) SaveAIStep(ctx context.Context, id string, req *dto.AIStep) (*vo.WorkspaceVo, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAIStep(ws, req)
	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}

func (s *setupService) SaveMetricsStep(ctx context.Context, id string, req *dto.MetricsStep) (*vo.WorkspaceVo, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyMetricsStep(ws, req)
	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}

func (s *setupService) SaveLogsStep(ctx context.Context, id string, req *dto.LogsStep) (*vo.WorkspaceVo, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyLogsStep(ws, req)
	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}

func (s *setupService) SaveCodeStep(ctx context.Context, id string, req *dto.CodeStep) (*vo.WorkspaceVo, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCodeStep(ws, req)
	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}

func applyAIStep(ws *model.Workspace, req *dto.AIStep) {
	ws.LLMProvider = &req.LLMProvider
	key := ""
	if req.LLMAPIKey != nil {
		key = *req.LLMAPIKey
	}
	ws.LLMAPIKey = &key
	ws.LLMBedrockURL = req.LLMBedrockURL
	ws.LLMModelID = req.LLMModelID
}

func applyMetricsStep(ws *model.Workspace, req *dto.MetricsStep) {
	ws.MetricsProvider = &req.Provider
	ws.MetricsEndpointURL = req.EndpointURL

	creds := map[string]string{}
	set := func(key string, v *string) {
		if v != nil && *v != "" {
			creds[key] = *v
		}
	}
	set("api_key", req.APIKey)
	set("app_key", req.AppKey)
	set("site", req.Site)
	set("bearer_token", req.BearerToken)
	set("username", req.Username)
	set("password", req.Password)
	ws.MetricsCredentials = creds
}

func applyLogsStep(ws *model.Workspace, req *dto.LogsStep) {
	ws.LogsProvider = &req.Provider
	ws.LogsHostURL = &req.HostURL
	cookie, csrf := "", ""
	if req.Cookie != nil {
		cookie = *req.Cookie
	}
	if req.CSRFToken != nil {
		csrf = *req.CSRFToken
	}
	ws.LogsCredentials = map[string]string{"cookie": cookie, "csrf_token": csrf}
}

func applyCodeStep(ws *model.Workspace, req *dto.CodeStep) {
	ws.CodeRepoPath = &req.RepoPath
	name := client.RepoName(req.RepoPath, req.RepoName)
	ws.CodeRepoName = &name
}

// configsFromRow rebuilds the per-service provisioning configs from the
// saved wizard state, so a provision run can be replayed without resending
// credentials.
func configsFromRow(ws *model.Workspace) *dto.ProvisionConfigs {
	cfgs := &dto.ProvisionConfigs{}

	if ws.LLMProvider != nil {
		cfgs.AI = &dto.AIStep{
			LLMProvider:   *ws.LLMProvider,
			LLMAPIKey:     ws.LLMAPIKey,
			LLMBedrockURL: ws.LLMBedrockURL,
			LLMModelID:    ws.LLMModelID,
		}
	}

	if ws.MetricsProvider != nil && ws.MetricsCredentials != nil {
		creds := ws.MetricsCredentials
		get := func(key string) *string {
			if v, ok := creds[key]; ok {
				return &v
			}
			return nil
		}
		cfgs.Metrics = &dto.MetricsStep{
			Provider:    *ws.MetricsProvider,
			APIKey:      get("api_key"),
			AppKey:      get("app_key"),
			Site:        get("site"),
			BearerToken: get("bearer_token"),
			Username:    get("username"),
			Password:    get("password"),
			EndpointURL: ws.MetricsEndpointURL,
		}
	}

	if ws.LogsProvider != nil && ws.LogsCredentials != nil {
		cookie := ws.LogsCredentials["cookie"]
		csrf := ws.LogsCredentials["csrf_token"]
		hostURL := ""
		if ws.LogsHostURL != nil {
			hostURL = *ws.LogsHostURL
		}
		cfgs.Logs = &dto.LogsStep{
			Provider:  *ws.LogsProvider,
			HostURL:   hostURL,
			Cookie:    &cookie,
			CSRFToken: &csrf,
		}
	}

	if ws.CodeRepoPath != nil {
		cfgs.Code = &dto.CodeStep{
			RepoPath: *ws.CodeRepoPath,
			RepoName: ws.CodeRepoName,
		}
	}

	return cfgs
}

// provision runs the orchestrator and folds the result into the workspace:
// all five link fields are overwritten and status is derived from the error
// list. The row is saved in any case.
func (s *setupService) provision(ctx context.Context, ws *model.Workspace, cfgs *dto.ProvisionConfigs) error {
	result := s.provisioner.Run(ctx, ws, cfgs)

	ws.FixAIOrgID = result.FixAIOrgID
	ws.MetricsOrgID = result.MetricsOrgID
	ws.LogsOrgID = result.LogsOrgID
	ws.CodeParserOrgID = result.CodeParserOrgID
	ws.CodeParserRepoID = result.CodeParserRepoID

	if len(result.Errors) > 0 {
		msg := strings.Join(result.Errors, "; ")
		ws.Status = model.StatusError
		ws.ErrorMessage = &msg
		s.logger.Warningf("workspace %s provisioned with errors: %s", ws.ID, msg)
	} else {
		ws.Status = model.StatusReady
		ws.ErrorMessage = nil
		s.logger.Infof("workspace %s provisioned", ws.ID)
	}

	return s.repo.Save(ctx, ws)
}

// Provision runs provisioning from the saved wizard state.
func (s *setupService) Provision(ctx context.Context, id string) (*vo.WorkspaceVo, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ws.Status = model.StatusProvisioning
	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, err
	}

	if err := s.provision(ctx, ws, configsFromRow(ws)); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}

// Complete creates the workspace, saves every supplied step and provisions
// in one request.
func (s *setupService) Complete(ctx context.Context, req *dto.SetupCompleteRequest) (*vo.WorkspaceVo, error) {
	if err := ValidateSlug(req.Slug); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	ws := &model.Workspace{
		Name:   req.Name,
		Slug:   req.Slug,
		Status: model.StatusProvisioning,
	}
	if req.AI != nil {
		applyAIStep(ws, req.AI)
	}
	if req.Metrics != nil {
		applyMetricsStep(ws, req.Metrics)
	}
	if req.Logs != nil {
		applyLogsStep(ws, req.Logs)
	}
	if req.Code != nil {
		applyCodeStep(ws, req.Code)
	}
	if err := s.repo.Create(ctx, ws); err != nil {
		return nil, err
	}

	cfgs := &dto.ProvisionConfigs{AI: req.AI, Metrics: req.Metrics, Logs: req.Logs, Code: req.Code}
	if err := s.provision(ctx, ws, cfgs); err != nil {
		return nil, err
	}
	return vo.NewSetupWorkspaceVo(ws), nil
}
