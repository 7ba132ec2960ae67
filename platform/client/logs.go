package client

import (
	"context"
	"fmt"
	"strings"

	"codecircle/platform/dto"
)

// LogsClient talks to logs-explorer.
type LogsClient struct {
	base string
}

func NewLogsClient(base string) *LogsClient {
	return &LogsClient{base: strings.TrimRight(base, "/")}
}

type logsProviderRequest struct {
	ProviderType string            `json:"provider_type"`
	Name         string            `json:"name"`
	HostURL      string            `json:"host_url"`
	AuthType     string            `json:"auth_type"`
	Credentials  map[string]string `json:"credentials"`
}

// Provision creates an organization and sets its provider connection.
func (l *LogsClient) Provision(ctx context.Context, name, slug string, cfg *dto.LogsStep) (string, error) {
	var org createOrgResponse
	err := provisionCaller.Post(ctx, l.base+"/api/v1/organizations", &createOrgRequest{
		Name:        name,
		Slug:        slug,
		Description: description(name),
	}, &org)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/api/v1/organizations/%s/provider", l.base, org.ID)
	err = provisionCaller.Put(ctx, url, &logsProviderRequest{
		ProviderType: cfg.Provider,
		Name:         fmt.Sprintf("Splunk - %s", name),
		HostURL:      cfg.HostURL,
		AuthType:     "cookie",
		Credentials: map[string]string{
			"cookie":     deref(cfg.Cookie),
			"csrf_token": deref(cfg.CSRFToken),
		},
	}, nil)
	if err != nil {
		return "", err
	}

	return org.ID, nil
}

// ListOrganizations returns the orgs known to logs-explorer.
func (l *LogsClient) ListOrganizations(ctx context.Context) ([]Org, error) {
	var orgs []Org
	if err := apiCaller.Get(ctx, l.base+"/api/v1/organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
