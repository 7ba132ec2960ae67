package controller

import (
	"context"

	"codecircle/platform/dto"
	"codecircle/platform/service"
	"codecircle/platform/vo"
)

type AIConfigController interface {
	GetAIConfig(ctx context.Context, workspaceID *string) (*vo.AIConfigVo, error)
	SaveAIConfig(ctx context.Context, workspaceID *string, req *dto.AIConfigUpdate) (*vo.AIConfigVo, error)
	RawAIConfig(ctx context.Context) (*vo.RawAIConfigVo, error)
}

type aiConfigController struct {
	aiConfigService service.AIConfigService
}

func NewAIConfigController(aiConfigService service.AIConfigService) AIConfigController {
	return &aiConfigController{aiConfigService: aiConfigService}
}

func (c *aiConfigController) GetAIConfig(ctx context.Context, workspaceID *string) (*vo.AIConfigVo, error) {
	return c.aiConfigService.Get(ctx, workspaceID)
}

func (c *aiConfigController) SaveAIConfig(ctx context.Context, workspaceID *string, req *dto.AIConfigUpdate) (*vo.AIConfigVo, error) {
	return c.aiConfigService.Save(ctx, workspaceID, req)
}

func (c *aiConfigController) RawAIConfig(ctx context.Context) (*vo.RawAIConfigVo, error) {
	return c.aiConfigService.Raw(ctx)
}
