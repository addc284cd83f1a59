package migration_1

import (
	"fmt"

	"gorm.io/gorm"
)

type ChatHistory struct {
	Title string
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&ChatHistory{}, "title"); err != nil {
		return fmt.Errorf("Migration1 failed: %w", err)
	}
	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&ChatHistory{}, "title"); err != nil {
		return fmt.Errorf("Rollback1 failed: %w", err)
	}
	return nil
}
