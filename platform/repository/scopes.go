package repository

import "gorm.io/gorm"

func WithID(id string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == "" {
			return db
		}
		return db.Where("id = ?", id)
	}
}

func WithSlug(slug string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if slug == "" {
			return db
		}
		return db.Where("slug = ?", slug)
	}
}

func WithWorkspaceID(wsID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if wsID == "" {
			return db
		}
		return db.Where("workspace_id = ?", wsID)
	}
}

// GlobalScope selects rows with no owning workspace.
func GlobalScope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("workspace_id IS NULL")
	}
}

func OrderByCreatedDesc() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}
}
