package migration_0

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatHistory mirrors the initial database.ChatHistory schema, before the
// title column was added.
type ChatHistory struct {
	ID        uint           `gorm:"primaryKey"`
	SessionID string         `gorm:"size:36;uniqueIndex;not null"`
	Messages  datatypes.JSON `gorm:"not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SiteVersion struct {
	ID          uint   `gorm:"primaryKey"`
	SessionID   string `gorm:"size:36;index;not null"`
	HTMLContent string `gorm:"not null"`
	Prompt      string `gorm:"not null"`
	CreatedAt   time.Time
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&ChatHistory{}, &SiteVersion{}); err != nil {
		return fmt.Errorf("Migration0 failed: %w", err)
	}
	return nil
}
