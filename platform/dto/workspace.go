package dto

// WorkspaceCreate is the request body for creating a workspace.
type WorkspaceCreate struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}

// ConnectServiceRequest links an existing service organization to a
// workspace.
type ConnectServiceRequest struct {
	Service string  `json:"service" binding:"required,oneof=fixai metrics logs code_parser"`
	OrgID   string  `json:"org_id" binding:"required,min=1"`
	RepoID  *string `json:"repo_id"` // only for code_parser
}

// CreateFixAIOrgRequest creates a fixai org pre-populated with the
// workspace's connected service details.
type CreateFixAIOrgRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}
