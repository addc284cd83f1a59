package chat

import (
	"fmt"

	"sitegen-backend/internal/database"

	"gorm.io/gorm"
)

// SaveVersion appends an immutable snapshot of generated HTML. The
// content is opaque text, nothing validates its structure.
func SaveVersion(db *gorm.DB, sessionID, prompt, htmlContent string) (database.SiteVersion, error) {
	version := database.SiteVersion{
		SessionID:   sessionID,
		Prompt:      prompt,
		HTMLContent: htmlContent,
	}

	dbMutex.Lock()
	defer dbMutex.Unlock()
	if err := db.Create(&version).Error; err != nil {
		return database.SiteVersion{}, fmt.Errorf("error saving site version: %w", err)
	}
	return version, nil
}

// ListVersions returns a session's versions newest first. The id
// tie-break keeps ordering deterministic when two versions land within
// the same timestamp granule.
func ListVersions(db *gorm.DB, sessionID string) ([]database.SiteVersion, error) {
	var versions []database.SiteVersion
	err := db.Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Find(&versions).Error
	return versions, err
}

func GetVersion(db *gorm.DB, versionID uint) (database.SiteVersion, error) {
	var version database.SiteVersion
	err := db.First(&version, "id = ?", versionID).Error
	return version, err
}

func CountVersions(db *gorm.DB, sessionID string) (int64, error) {
	var count int64
	err := db.Model(&database.SiteVersion{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
