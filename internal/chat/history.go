package chat

import (
	"errors"
	"fmt"
	"sync"

	"sitegen-backend/internal/database"

	"gorm.io/gorm"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

// sessionLocks serializes the read-modify-write of one session's message
// blob, so two concurrent generations in the same session cannot drop
// each other's appends. Entries are never evicted; a session id is 36
// bytes and the set is bounded by the number of live conversations.
var sessionLocks sync.Map

func lockSession(sessionID string) func() {
	m, _ := sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// LoadHistory returns the stored turns for a session in append order, or
// nil if the session has no history yet.
func LoadHistory(db *gorm.DB, sessionID string) ([]Turn, error) {
	var history database.ChatHistory
	err := db.First(&history, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading chat history: %w", err)
	}
	return DecodeTurns(history.Messages), nil
}

// AppendTurns adds turns to the end of a session's history, creating the
// row if it does not exist. The write is committed before returning.
func AppendTurns(db *gorm.DB, sessionID string, turns ...Turn) error {
	unlock := lockSession(sessionID)
	defer unlock()

	var history database.ChatHistory
	err := db.First(&history, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		history = database.ChatHistory{SessionID: sessionID}
	} else if err != nil {
		return fmt.Errorf("error loading chat history: %w", err)
	}

	blob, err := EncodeTurns(append(DecodeTurns(history.Messages), turns...))
	if err != nil {
		return err
	}
	history.Messages = blob

	dbMutex.Lock()
	defer dbMutex.Unlock()
	if err := db.Save(&history).Error; err != nil {
		return fmt.Errorf("error saving chat history: %w", err)
	}
	return nil
}

// ClearHistory empties a session's stored turns without deleting the row.
func ClearHistory(db *gorm.DB, sessionID string) error {
	unlock := lockSession(sessionID)
	defer unlock()

	dbMutex.Lock()
	defer dbMutex.Unlock()
	err := db.Model(&database.ChatHistory{}).
		Where("session_id = ?", sessionID).
		Update("messages", "[]").Error
	if err != nil {
		return fmt.Errorf("error clearing chat history: %w", err)
	}
	return nil
}

func GetSession(db *gorm.DB, sessionID string) (database.ChatHistory, error) {
	var history database.ChatHistory
	err := db.First(&history, "session_id = ?", sessionID).Error
	return history, err
}

func SessionExists(db *gorm.DB, sessionID string) (bool, error) {
	var count int64
	err := db.Model(&database.ChatHistory{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count > 0, err
}

func ListSessions(db *gorm.DB) ([]database.ChatHistory, error) {
	var sessions []database.ChatHistory
	err := db.Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func RenameSession(db *gorm.DB, sessionID, title string) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.Model(&database.ChatHistory{}).
		Where("session_id = ?", sessionID).
		Update("title", title).Error
}
