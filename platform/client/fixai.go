package client

import (
	"context"
	"fmt"
	"strings"
)

// FixAIClient talks to fixai, the AI-assist service.
type FixAIClient struct {
	base string
}

func NewFixAIClient(base string) *FixAIClient {
	return &FixAIClient{base: strings.TrimRight(base, "/")}
}

// ServiceMappings are the cross-service references a fixai organization
// carries. Unknown identifiers must be JSON null, never an empty string:
// fixai rejects empty strings for optional id fields.
type ServiceMappings struct {
	CodeParserBaseURL      *string `json:"code_parser_base_url"`
	CodeParserOrgID        *string `json:"code_parser_org_id"`
	CodeParserRepoID       *string `json:"code_parser_repo_id"`
	MetricsExplorerBaseURL *string `json:"metrics_explorer_base_url"`
	MetricsExplorerOrgID   *string `json:"metrics_explorer_org_id"`
	LogsExplorerBaseURL    *string `json:"logs_explorer_base_url"`
	LogsExplorerOrgID      *string `json:"logs_explorer_org_id"`
}

type createFixAIOrgRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ServiceMappings
}

// Provision creates the fixai organization pre-linked to the other
// services. There is no second step: the mappings ride on the creation
// payload.
func (f *FixAIClient) Provision(ctx context.Context, name, slug string, mappings ServiceMappings) (string, error) {
	var org createOrgResponse
	err := provisionCaller.Post(ctx, f.base+"/api/v1/organizations", &createFixAIOrgRequest{
		Name:            name,
		Slug:            slug,
		Description:     description(name),
		ServiceMappings: mappings,
	}, &org)
	if err != nil {
		return "", err
	}
	return org.ID, nil
}

// CreateOrganization is the synchronous variant used by the
// create-fixai-org endpoint: short timeout profile, no description.
func (f *FixAIClient) CreateOrganization(ctx context.Context, name, slug string, mappings ServiceMappings) (string, error) {
	var org createOrgResponse
	err := apiCaller.Post(ctx, f.base+"/api/v1/organizations", &createFixAIOrgRequest{
		Name:            name,
		Slug:            slug,
		ServiceMappings: mappings,
	}, &org)
	if err != nil {
		return "", err
	}
	return org.ID, nil
}

// UpdateOrganization replaces the org's service mappings.
func (f *FixAIClient) UpdateOrganization(ctx context.Context, orgID string, mappings ServiceMappings) error {
	url := fmt.Sprintf("%s/api/v1/organizations/%s", f.base, orgID)
	return apiCaller.Patch(ctx, url, &mappings, nil)
}

// PushAIConfig writes the AI credential document to one org.
func (f *FixAIClient) PushAIConfig(ctx context.Context, orgID string, payload *AIConfigPayload) error {
	url := fmt.Sprintf("%s/api/v1/organizations/%s/ai-config", f.base, orgID)
	return apiCaller.Put(ctx, url, payload, nil)
}

// ListOrganizations returns the orgs known to fixai.
func (f *FixAIClient) ListOrganizations(ctx context.Context) ([]Org, error) {
	var orgs []Org
	if err := apiCaller.Get(ctx, f.base+"/api/v1/organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
