package vo

import (
	"fmt"
	"time"

	"codecircle/platform/model"
)

// AIConfigVo never carries the raw credential: only whether one is set and
// a short tail for identification.
type AIConfigVo struct {
	Provider      string    `json:"provider"`
	APIKeySet     bool      `json:"api_key_set"`
	APIKeyPreview *string   `json:"api_key_preview,omitempty"`
	BaseURL       string    `json:"base_url"`
	ModelID       string    `json:"model_id"`
	MaxTokens     int       `json:"max_tokens"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewAIConfigVo(cfg *model.AIConfig) *AIConfigVo {
	v := &AIConfigVo{
		Provider:  string(cfg.Provider),
		APIKeySet: cfg.APIKey != "",
		BaseURL:   cfg.BaseURL,
		ModelID:   cfg.ModelID,
		MaxTokens: cfg.MaxTokens,
		UpdatedAt: cfg.UpdatedAt,
	}
	if len(cfg.APIKey) > 8 {
		preview := fmt.Sprintf("...%s", cfg.APIKey[len(cfg.APIKey)-8:])
		v.APIKeyPreview = &preview
	}
	return v
}

// RawAIConfigVo is the internal-consumption shape other services read on
// startup. It does include the credential.
type RawAIConfigVo struct {
	Provider        string `json:"provider"`
	ClaudeAPIKey    string `json:"claude_api_key"`
	ClaudeBedrock   string `json:"claude_bedrock_url"`
	ClaudeModelID   string `json:"claude_model_id"`
	ClaudeMaxTokens int    `json:"claude_max_tokens"`
}

func NewRawAIConfigVo(cfg *model.AIConfig) *RawAIConfigVo {
	return &RawAIConfigVo{
		Provider:        string(cfg.Provider),
		ClaudeAPIKey:    cfg.APIKey,
		ClaudeBedrock:   cfg.BaseURL,
		ClaudeModelID:   cfg.ModelID,
		ClaudeMaxTokens: cfg.MaxTokens,
	}
}
