package service

import (
	"errors"
	"regexp"
)

var (
	ErrNotFound         = errors.New("workspace not found")
	ErrSlugTaken        = errors.New("slug already exists")
	ErrInvalidSlug      = errors.New("slug must be lowercase letters, digits and hyphens")
	ErrFixAILinked      = errors.New("fixai org is already connected to this workspace")
	ErrNoLinkedServices = errors.New("connect at least one service (code parser, metrics, or logs) before creating a fixai org")
	ErrUnknownService   = errors.New("unknown service")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug enforces the slug shape shared by workspaces and downstream
// organizations.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}
