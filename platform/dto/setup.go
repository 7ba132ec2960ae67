package dto

// AIStep saves the AI / LLM step of the setup wizard.
type AIStep struct {
	LLMProvider   string  `json:"llm_provider" binding:"required,oneof=anthropic bedrock"`
	LLMAPIKey     *string `json:"llm_api_key"`
	LLMBedrockURL *string `json:"llm_bedrock_url"`
	LLMModelID    *string `json:"llm_model_id"`
}

// MetricsStep saves the metrics provider step. Which credential fields
// apply depends on the provider kind.
type MetricsStep struct {
	Provider    string  `json:"provider" binding:"required,oneof=datadog prometheus grafana"`
	APIKey      *string `json:"api_key"`
	AppKey      *string `json:"app_key"`
	Site        *string `json:"site"`
	BearerToken *string `json:"bearer_token"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	EndpointURL *string `json:"endpoint_url"`
}

// LogsStep saves the logs provider step.
type LogsStep struct {
	Provider  string  `json:"provider" binding:"required"`
	HostURL   string  `json:"host_url" binding:"required"`
	Cookie    *string `json:"cookie"`
	CSRFToken *string `json:"csrf_token"`
}

// CodeStep saves the code repository step.
type CodeStep struct {
	RepoPath string  `json:"repo_path" binding:"required"`
	RepoName *string `json:"repo_name"`
}

// SetupCompleteRequest creates a workspace and provisions every configured
// service in one call.
type SetupCompleteRequest struct {
	Name    string       `json:"name" binding:"required,min=1,max=255"`
	Slug    string       `json:"slug" binding:"required,min=1,max=255"`
	AI      *AIStep      `json:"ai"`
	Metrics *MetricsStep `json:"metrics"`
	Logs    *LogsStep    `json:"logs"`
	Code    *CodeStep    `json:"code"`
}

// ProvisionConfigs carries the per-service configurations one provision run
// acts on. A nil member skips that service.
type ProvisionConfigs struct {
	AI      *AIStep
	Metrics *MetricsStep
	Logs    *LogsStep
	Code    *CodeStep
}
