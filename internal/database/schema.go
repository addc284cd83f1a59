package database

import (
	"time"

	"gorm.io/datatypes"
)

// ChatHistory holds the full conversation for one session as a single
// serialized blob. At most one row exists per session id.
type ChatHistory struct {
	ID        uint           `gorm:"primaryKey"`
	SessionID string         `gorm:"size:36;uniqueIndex;not null"`
	Messages  datatypes.JSON `gorm:"not null;default:'[]'"`
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SiteVersion is an immutable snapshot of generated HTML. Rows are only
// ever created, never updated or deleted.
type SiteVersion struct {
	ID          uint   `gorm:"primaryKey"`
	SessionID   string `gorm:"size:36;index;not null"`
	HTMLContent string `gorm:"not null"`
	Prompt      string `gorm:"not null"`
	CreatedAt   time.Time
}
