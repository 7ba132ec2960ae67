package dto

// AIConfigUpdate is the request body for saving an AI configuration.
// A nil APIKey leaves the stored credential untouched.
type AIConfigUpdate struct {
	Provider  string  `json:"provider" binding:"omitempty,oneof=claude bedrock"`
	APIKey    *string `json:"api_key"`
	BaseURL   *string `json:"base_url"`
	ModelID   *string `json:"model_id"`
	MaxTokens int     `json:"max_tokens" binding:"omitempty,min=1,max=100000"`
}
