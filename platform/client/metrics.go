package client

import (
	"context"
	"fmt"
	"strings"

	"codecircle/platform/dto"
)

// MetricsClient talks to metrics-explorer.
type MetricsClient struct {
	base string
}

func NewMetricsClient(base string) *MetricsClient {
	return &MetricsClient{base: strings.TrimRight(base, "/")}
}

type createOrgRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type createOrgResponse struct {
	ID string `json:"id"`
}

type metricsProviderRequest struct {
	ProviderType string            `json:"provider_type"`
	Name         string            `json:"name"`
	Credentials  map[string]string `json:"credentials"`
	EndpointURL  string            `json:"endpoint_url,omitempty"`
}

// Provision creates an organization and attaches the metrics provider to
// it. The two steps are not atomic: a provider failure after the org was
// created leaves the org behind and returns no identifier.
func (m *MetricsClient) Provision(ctx context.Context, name, slug string, cfg *dto.MetricsStep) (string, error) {
	var org createOrgResponse
	err := provisionCaller.Post(ctx, m.base+"/api/v1/organizations", &createOrgRequest{
		Name:        name,
		Slug:        slug,
		Description: description(name),
	}, &org)
	if err != nil {
		return "", err
	}

	credentials := map[string]string{}
	switch cfg.Provider {
	case "datadog":
		credentials["api_key"] = deref(cfg.APIKey)
		credentials["app_key"] = deref(cfg.AppKey)
		if cfg.Site != nil && *cfg.Site != "" {
			credentials["site"] = *cfg.Site
		}
	case "prometheus":
		if cfg.Username != nil && *cfg.Username != "" {
			credentials["username"] = *cfg.Username
		}
		if cfg.Password != nil && *cfg.Password != "" {
			credentials["password"] = *cfg.Password
		}
		if cfg.BearerToken != nil && *cfg.BearerToken != "" {
			credentials["bearer_token"] = *cfg.BearerToken
		}
	case "grafana":
		key := deref(cfg.BearerToken)
		if key == "" {
			key = deref(cfg.APIKey)
		}
		credentials["api_key"] = key
	}

	provider := &metricsProviderRequest{
		ProviderType: cfg.Provider,
		Name:         fmt.Sprintf("%s - %s", cfg.Provider, name),
		Credentials:  credentials,
		EndpointURL:  deref(cfg.EndpointURL),
	}

	url := fmt.Sprintf("%s/api/v1/organizations/%s/providers", m.base, org.ID)
	if err := provisionCaller.Post(ctx, url, provider, nil); err != nil {
		return "", err
	}

	return org.ID, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
