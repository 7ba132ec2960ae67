package vo

import (
	"time"

	"codecircle/platform/model"
)

// ServiceIDs are a workspace's remote organization identifiers, one per
// downstream service.
type ServiceIDs struct {
	FixAIOrgID       *string `json:"fixai_org_id"`
	MetricsOrgID     *string `json:"metrics_org_id"`
	LogsOrgID        *string `json:"logs_org_id"`
	CodeParserOrgID  *string `json:"code_parser_org_id"`
	CodeParserRepoID *string `json:"code_parser_repo_id"`
}

type WorkspaceVo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Status       string     `json:"status"`
	ServiceIDs   ServiceIDs `json:"service_ids"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Setup wizard state, only populated on setup responses. Credentials
	// are reduced to has_* booleans.
	LLMProvider           *string `json:"llm_provider,omitempty"`
	LLMModelID            *string `json:"llm_model_id,omitempty"`
	HasLLMKey             *bool   `json:"has_llm_key,omitempty"`
	MetricsProvider       *string `json:"metrics_provider,omitempty"`
	MetricsEndpointURL    *string `json:"metrics_endpoint_url,omitempty"`
	HasMetricsCredentials *bool   `json:"has_metrics_credentials,omitempty"`
	LogsProvider          *string `json:"logs_provider,omitempty"`
	LogsHostURL           *string `json:"logs_host_url,omitempty"`
	HasLogsCredentials    *bool   `json:"has_logs_credentials,omitempty"`
	CodeRepoPath          *string `json:"code_repo_path,omitempty"`
	CodeRepoName          *string `json:"code_repo_name,omitempty"`
}

// NewWorkspaceVo maps a workspace row to its API shape.
func NewWorkspaceVo(ws *model.Workspace) *WorkspaceVo {
	return &WorkspaceVo{
		ID:     ws.ID,
		Name:   ws.Name,
		Slug:   ws.Slug,
		Status: string(ws.Status),
		ServiceIDs: ServiceIDs{
			FixAIOrgID:       ws.FixAIOrgID,
			MetricsOrgID:     ws.MetricsOrgID,
			LogsOrgID:        ws.LogsOrgID,
			CodeParserOrgID:  ws.CodeParserOrgID,
			CodeParserRepoID: ws.CodeParserRepoID,
		},
		ErrorMessage: ws.ErrorMessage,
		CreatedAt:    ws.CreatedAt,
		UpdatedAt:    ws.UpdatedAt,
	}
}

// NewSetupWorkspaceVo is NewWorkspaceVo plus the setup wizard state.
func NewSetupWorkspaceVo(ws *model.Workspace) *WorkspaceVo {
	v := NewWorkspaceVo(ws)
	v.LLMProvider = ws.LLMProvider
	v.LLMModelID = ws.LLMModelID
	v.HasLLMKey = boolPtr(ws.LLMAPIKey != nil && *ws.LLMAPIKey != "")
	v.MetricsProvider = ws.MetricsProvider
	v.MetricsEndpointURL = ws.MetricsEndpointURL
	v.HasMetricsCredentials = boolPtr(len(ws.MetricsCredentials) > 0)
	v.LogsProvider = ws.LogsProvider
	v.LogsHostURL = ws.LogsHostURL
	v.HasLogsCredentials = boolPtr(len(ws.LogsCredentials) > 0)
	v.CodeRepoPath = ws.CodeRepoPath
	v.CodeRepoName = ws.CodeRepoName
	return v
}

func boolPtr(b bool) *bool {
	return &b
}

// ServiceOrgVo is the generic representation of an org from any service.
type ServiceOrgVo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}
