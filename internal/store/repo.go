package store

import "github.com/yuldashevrozali/Ramazon-taqvimi/internal/domain"

// Repo defines storage operations for the user registry.
type Repo interface {
	// Load returns the full registry, freshly read from storage.
	Load() ([]domain.User, error)
	// Save overwrites the registry wholesale.
	Save(users []domain.User) error
	// GetUser returns the record for chatID, or nil when absent.
	GetUser(chatID string) (*domain.User, error)
	// IsRegistered reports whether chatID has a record with a phone.
	IsRegistered(chatID string) (bool, error)
	// Upsert merges the patch into the record for its ChatID (appending a
	// new record when absent) and persists before returning.
	Upsert(p domain.Patch) error
}
