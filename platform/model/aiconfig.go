package model

import "gorm.io/gorm"

// AIProvider selects how the AI credential is consumed downstream.
type AIProvider string

const (
	ProviderClaude  AIProvider = "claude"  // direct API
	ProviderBedrock AIProvider = "bedrock" // AWS Bedrock proxy
)

func (p AIProvider) Valid() bool {
	return p == ProviderClaude || p == ProviderBedrock
}

// GlobalScopeKey is the ScopeKey sentinel of the row with no owning
// workspace. Workspace ids are uuids, so it cannot collide.
const GlobalScopeKey = "global"

// AIConfig is an AI / LLM credential record. A row with a nil WorkspaceID is
// the global default; a row with a WorkspaceID overrides it for that
// workspace. Uniqueness is enforced through ScopeKey rather than WorkspaceID:
// a unique index on a nullable column admits any number of NULL rows, so the
// global row would not be constrained.
type AIConfig struct {
	Model
	WorkspaceID *string    `gorm:"type:text;index" json:"workspace_id,omitempty"`
	ScopeKey    string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	Provider    AIProvider `gorm:"type:varchar(50);default:'bedrock'" json:"provider"`
	APIKey      string     `gorm:"type:text" json:"-"`
	BaseURL     string     `gorm:"type:varchar(500)" json:"base_url"`
	ModelID     string     `gorm:"type:varchar(200)" json:"model_id"`
	MaxTokens   int        `gorm:"default:4096" json:"max_tokens"`
}

// BeforeSave keeps ScopeKey derived from the owning workspace, so callers
// never set it directly.
func (c *AIConfig) BeforeSave(tx *gorm.DB) error {
	if c.WorkspaceID != nil {
		c.ScopeKey = *c.WorkspaceID
	} else {
		c.ScopeKey = GlobalScopeKey
	}
	return nil
}

func (AIConfig) TableName() string {
	return "ai_config"
}
