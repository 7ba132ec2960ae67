package service

import (
	"context"

	"codecircle/internal/config"
	"codecircle/pkg/log"
	"codecircle/platform/dto"
	"codecircle/platform/model"
	"codecircle/platform/repository"
	"codecircle/platform/vo"
)

type WorkspaceService interface {
	Create(ctx context.Context, req *dto.WorkspaceCreate) (*vo.WorkspaceVo, error)
	List(ctx context.Context) ([]*vo.WorkspaceVo, error)
	Get(ctx context.Context, id string) (*vo.WorkspaceVo, error)
	Delete(ctx context.Context, id string) error
	Connect(ctx context.Context, id string, req *dto.ConnectServiceRequest) (*vo.WorkspaceVo, error)
	Disconnect(ctx context.Context, id string, svc string) (*vo.WorkspaceVo, error)
	CreateFixAIOrg(ctx context.Context, id string, req *dto.CreateFixAIOrgRequest) (*vo.WorkspaceVo, error)
}

type workspaceService struct {
	logger   *log.Logger
	repo     *repository.WorkspaceRepository
	clients  *Clients
	services *config.ServicesConfig
	syncer   *Syncer
}

func NewWorkspaceService(repo *repository.WorkspaceRepository, clients *Clients, services *config.ServicesConfig, syncer *Syncer) WorkspaceService {
	return &workspaceService{
		logger:   log.GetLogger("workspace"),
		repo:     repo,
		clients:  clients,
		services: services,
		syncer:   syncer,
	}
}

func (w *workspaceService) Create(ctx context.Context, req *dto.WorkspaceCreate) (*vo.WorkspaceVo, error) {
	if err := ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	existing, err := w.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	ws := &model.Workspace{
		Name:   req.Name,
		Slug:   req.Slug,
		Status: model.StatusSetup,
	}
	if err := w.repo.Create(ctx, ws); err != nil {
		return nil, err
	}
	w.logger.Infof("created workspace %s (slug %s)", ws.ID, ws.Slug)
	return vo.NewWorkspaceVo(ws), nil
}

func (w *workspaceService) List(ctx context.Context) ([]*vo.WorkspaceVo, error) {
	workspaces, err := w.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]*vo.WorkspaceVo, 0, len(workspaces))
	for _, ws := range workspaces {
		vos = append(vos, vo.NewWorkspaceVo(ws))
	}
	return vos, nil
}

func (w *workspaceService) Get(ctx context.Context, id string) (*vo.WorkspaceVo, error) {
	ws, err := w.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewWorkspaceVo(ws), nil
}

func (w *workspaceService) Delete(ctx context.Context, id string) error {
	ws, err := w.load(ctx, id)
	if err != nil {
		return err
	}
	// Remote organizations are intentionally left behind: they may be
	// reconnected to another workspace later.
	return w.repo.Delete(ctx, repository.WithID(ws.ID))
}

func (w *workspaceService) load(ctx context.Context, id string) (*model.Workspace, error) {
	ws, err := w.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrNotFound
	}
	return ws, nil
}

func (w *workspaceService) Connect(ctx context.Context, id string, req *dto.ConnectServiceRequest) (*vo.WorkspaceVo, error) {
	ws, err := w.load(ctx, id)
	if err != nil {
		return nil, err
	}

	svc := model.Service(req.Service)
	switch svc {
	case model.ServiceFixAI:
		ws.FixAIOrgID = &req.OrgID
	case model.ServiceMetrics:
		ws.MetricsOrgID = &req.OrgID
	case model.ServiceLogs:
		ws.LogsOrgID = &req.OrgID
	case model.ServiceCodeParser:
		ws.CodeParserOrgID = &req.OrgID
		if req.RepoID != nil && *req.RepoID != "" {
			ws.CodeParserRepoID = req.RepoID
		}
	default:
		return nil, ErrUnknownService
	}

	if err := w.repo.Save(ctx, ws); err != nil {
		return nil, err
	}

	if svc == model.ServiceFixAI || svc == model.ServiceCodeParser {
		w.syncer.QueuePushAIConfigToOrg(svc, req.OrgID)
	}
	if svc != model.ServiceFixAI && ws.FixAIOrgID != nil {
		w.syncer.QueueSyncServiceMappings(ws.ID)
	}

	return vo.NewWorkspaceVo(ws), nil
}

func (w *workspaceService) Disconnect(ctx context.Context, id string, svcName string) (*vo.WorkspaceVo, error) {
	svc := model.Service(svcName)
	if !svc.Valid() {
		return nil, ErrUnknownService
	}

	ws, err := w.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch svc {
	case model.ServiceFixAI:
		ws.FixAIOrgID = nil
	case model.ServiceMetrics:
		ws.MetricsOrgID = nil
	case model.ServiceLogs:
		ws.LogsOrgID = nil
	case model.ServiceCodeParser:
		ws.CodeParserOrgID = nil
		ws.CodeParserRepoID = nil
	}

	if err := w.repo.Save(ctx, ws); err != nil {
		return nil, err
	}

	if svc != model.ServiceFixAI && ws.FixAIOrgID != nil {
		w.syncer.QueueSyncServiceMappings(ws.ID)
	}

	return vo.NewWorkspaceVo(ws), nil
}

// CreateFixAIOrg creates a fixai org pre-populated with the workspace's
// connected service details and links it. Unlike provisioning, the remote
// call is synchronous and its failure propagates to the caller.
func (w *workspaceService) CreateFixAIOrg(ctx context.Context, id string, req *dto.CreateFixAIOrgRequest) (*vo.WorkspaceVo, error) {
	ws, err := w.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws.FixAIOrgID != nil {
		return nil, ErrFixAILinked
	}
	if ws.CodeParserOrgID == nil && ws.MetricsOrgID == nil && ws.LogsOrgID == nil {
		return nil, ErrNoLinkedServices
	}

	mappings := fixaiMappings(ws, w.services)
	orgID, err := w.clients.FixAI.CreateOrganization(ctx, req.Name, req.Slug, mappings)
	if err != nil {
		return nil, err
	}

	ws.FixAIOrgID = &orgID
	if err := w.repo.Save(ctx, ws); err != nil {
		return nil, err
	}
	w.logger.Infof("created fixai org %s for workspace %s", orgID, ws.ID)

	w.syncer.QueuePushAIConfigToOrg(model.ServiceFixAI, orgID)

	return vo.NewWorkspaceVo(ws), nil
}
