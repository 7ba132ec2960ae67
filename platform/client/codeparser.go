package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"codecircle/platform/dto"
)

// CodeParserClient talks to code-parser.
type CodeParserClient struct {
	base string
}

func NewCodeParserClient(base string) *CodeParserClient {
	return &CodeParserClient{base: strings.TrimRight(base, "/")}
}

// code-parser orgs have no slug, and its ids may be numeric.
type codeOrgRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type codeIDResponse struct {
	ID json.Number `json:"id"`
}

// OrgID echoes the id exactly as code-parser issued it: a numeric id goes
// back as a JSON number, not a quoted string.
type submitRepoRequest struct {
	Path  string      `json:"path"`
	Name  string      `json:"name"`
	OrgID json.Number `json:"org_id"`
}

// Provision creates an organization and submits the repository for
// parsing. Returns (orgID, repoID).
func (c *CodeParserClient) Provision(ctx context.Context, name string, cfg *dto.CodeStep) (string, string, error) {
	var org codeIDResponse
	err := provisionCaller.Post(ctx, c.base+"/api/v1/orgs", &codeOrgRequest{
		Name:        name,
		Description: description(name),
	}, &org)
	if err != nil {
		return "", "", err
	}

	repoName := RepoName(cfg.RepoPath, cfg.RepoName)
	var repo codeIDResponse
	err = provisionCaller.Post(ctx, c.base+"/api/v1/repos", &submitRepoRequest{
		Path:  cfg.RepoPath,
		Name:  repoName,
		OrgID: org.ID,
	}, &repo)
	if err != nil {
		return "", "", err
	}

	return org.ID.String(), repo.ID.String(), nil
}

// RepoName resolves the repository display name: the explicit name when
// given, otherwise the last path segment.
func RepoName(repoPath string, explicit *string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	trimmed := strings.TrimRight(repoPath, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// PushAIConfig writes the AI credential document to one org.
func (c *CodeParserClient) PushAIConfig(ctx context.Context, orgID string, payload *AIConfigPayload) error {
	url := fmt.Sprintf("%s/api/v1/orgs/%s/ai-config", c.base, orgID)
	return apiCaller.Put(ctx, url, payload, nil)
}

// ListOrganizations returns the orgs known to code-parser.
func (c *CodeParserClient) ListOrganizations(ctx context.Context) ([]Org, error) {
	var orgs []Org
	if err := apiCaller.Get(ctx, c.base+"/api/v1/orgs", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
