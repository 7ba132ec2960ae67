package service

import (
	"codecircle/internal/config"
	"codecircle/platform/client"
	"codecircle/platform/model"
)

// Clients bundles the four downstream service clients.
type Clients struct {
	FixAI      *client.FixAIClient
	Metrics    *client.MetricsClient
	Logs       *client.LogsClient
	CodeParser *client.CodeParserClient
}

func NewClients(cfg *config.ServicesConfig) *Clients {
	return &Clients{
		FixAI:      client.NewFixAIClient(cfg.FixAIURL),
		Metrics:    client.NewMetricsClient(cfg.MetricsExplorerURL),
		Logs:       client.NewLogsClient(cfg.LogsExplorerURL),
		CodeParser: client.NewCodeParserClient(cfg.CodeParserURL),
	}
}

// fixaiMappings builds the mapping triples fixai carries for a workspace's
// current links. Base URLs are set only alongside a linked org id; everything
// for an unlinked service goes out as JSON null.
func fixaiMappings(ws *model.Workspace, services *config.ServicesConfig) client.ServiceMappings {
	var m client.ServiceMappings
	if ws.CodeParserOrgID != nil {
		m.CodeParserBaseURL = &services.CodeParserURL
		m.CodeParserOrgID = ws.CodeParserOrgID
		m.CodeParserRepoID = ws.CodeParserRepoID
	}
	if ws.MetricsOrgID != nil {
		m.MetricsExplorerBaseURL = &services.MetricsExplorerURL
		m.MetricsExplorerOrgID = ws.MetricsOrgID
	}
	if ws.LogsOrgID != nil {
		m.LogsExplorerBaseURL = &services.LogsExplorerURL
		m.LogsExplorerOrgID = ws.LogsOrgID
	}
	return m
}
