package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/domain"
)

// JSONRepo implements Repo over a single JSON document holding the full
// user array. Every mutation is a load-merge-save cycle serialized behind
// the mutex, so interleaved upserts cannot drop each other's writes.
type JSONRepo struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepo creates a repo backed by the document at path. The file is
// created lazily on first use.
func NewJSONRepo(path string) *JSONRepo {
	return &JSONRepo{path: path}
}

// Load reads the full registry. A missing document is initialized to an
// empty array. A malformed document is an error: callers must not save over
// a failed read, that would truncate the registry.
func (r *JSONRepo) Load() ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *JSONRepo) loadLocked() ([]domain.User, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		if werr := os.WriteFile(r.path, []byte("[]"), 0o644); werr != nil {
			return nil, fmt.Errorf("init users document: %w", werr)
		}
		return []domain.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users document: %w", err)
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users document: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Save overwrites the document with the full sequence.
func (r *JSONRepo) Save(users []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(users)
}

func (r *JSONRepo) saveLocked(users []domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users document: %w", err)
	}
	return nil
}

// GetUser returns the first record matching chatID, or nil.
func (r *JSONRepo) GetUser(chatID string) (*domain.User, error) {
	users, err := r.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ChatID == chatID {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// IsRegistered reports whether chatID has a record with a non-empty phone.
func (r *JSONRepo) IsRegistered(chatID string) (bool, error) {
	u, err := r.GetUser(chatID)
	if err != nil {
		return false, err
	}
	return u != nil && u.Registered(), nil
}

// Upsert merges the patch by ChatID and persists synchronously. The whole
// cycle holds the mutex, so an Upsert never saves a stale snapshot.
func (r *JSONRepo) Upsert(p domain.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadLocked()
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].ChatID == p.ChatID {
			p.Apply(&users[i])
			found = true
			break
		}
	}
	if !found {
		var u domain.User
		p.Apply(&u)
		users = append(users, u)
	}
	return r.saveLocked(users)
}
