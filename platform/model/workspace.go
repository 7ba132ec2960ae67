package model

// WorkspaceStatus is the provisioning lifecycle of a workspace.
type WorkspaceStatus string

const (
	StatusSetup        WorkspaceStatus = "setup"
	StatusProvisioning WorkspaceStatus = "provisioning"
	StatusReady        WorkspaceStatus = "ready"
	StatusError        WorkspaceStatus = "error"
)

// Service names a downstream service a workspace can be linked to.
type Service string

const (
	ServiceFixAI      Service = "fixai"
	ServiceMetrics    Service = "metrics"
	ServiceLogs       Service = "logs"
	ServiceCodeParser Service = "code_parser"
)

func (s Service) Valid() bool {
	switch s {
	case ServiceFixAI, ServiceMetrics, ServiceLogs, ServiceCodeParser:
		return true
	}
	return false
}

// Workspace is the central entity that unifies one organization per
// downstream service. The per-step setup configuration is stored on the row
// so a provision run can be replayed from saved state.
type Workspace struct {
	Model
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`

	// AI / LLM step
	LLMProvider   *string `gorm:"column:llm_provider;type:varchar(50)" json:"llm_provider,omitempty"`
	LLMAPIKey     *string `gorm:"column:llm_api_key;type:text" json:"-"`
	LLMBedrockURL *string `gorm:"column:llm_bedrock_url;type:varchar(500)" json:"llm_bedrock_url,omitempty"`
	LLMModelID    *string `gorm:"column:llm_model_id;type:varchar(200)" json:"llm_model_id,omitempty"`

	// Metrics step
	MetricsProvider    *string           `gorm:"type:varchar(50)" json:"metrics_provider,omitempty"`
	MetricsCredentials map[string]string `gorm:"serializer:json" json:"-"`
	MetricsEndpointURL *string           `gorm:"type:varchar(500)" json:"metrics_endpoint_url,omitempty"`

	// Logs step
	LogsProvider    *string           `gorm:"type:varchar(50)" json:"logs_provider,omitempty"`
	LogsCredentials map[string]string `gorm:"serializer:json" json:"-"`
	LogsHostURL     *string           `gorm:"type:varchar(500)" json:"logs_host_url,omitempty"`

	// Code step
	CodeRepoPath *string `gorm:"type:varchar(1000)" json:"code_repo_path,omitempty"`
	CodeRepoName *string `gorm:"type:varchar(255)" json:"code_repo_name,omitempty"`

	// Service links, populated by provisioning or connect
	FixAIOrgID       *string `gorm:"column:fixai_org_id;type:varchar(50)" json:"fixai_org_id"`
	MetricsOrgID     *string `gorm:"type:varchar(50)" json:"metrics_org_id"`
	LogsOrgID        *string `gorm:"type:varchar(50)" json:"logs_org_id"`
	CodeParserOrgID  *string `gorm:"type:varchar(50)" json:"code_parser_org_id"`
	CodeParserRepoID *string `gorm:"type:varchar(50)" json:"code_parser_repo_id"`

	Status       WorkspaceStatus `gorm:"type:varchar(50);default:'setup'" json:"status"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
