package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"userdir-backend/internal/models"
)

// FileUserRepository keeps all users in a single JSON array on disk. Every
// operation is a full read-modify-write cycle; a mutex serializes the cycles
// so concurrent requests cannot interleave and lose writes. Writes go
// through a temp file and a rename so a crash never leaves a half-written
// array behind.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{path: path}
}

// load reads the whole array, creating an empty file on first read.
// Callers must hold the mutex.
func (r *FileUserRepository) load() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
		}
		if err := r.save([]models.User{}); err != nil {
			return nil, err
		}
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return users, nil
}

// save writes the whole array atomically. Callers must hold the mutex.
func (r *FileUserRepository) save(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp := r.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

func matches(u models.User, query string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), query) ||
		strings.Contains(strings.ToLower(u.LastName), query) ||
		strings.Contains(strings.ToLower(u.Email), query)
}

// sortUsers orders by lowercased first name, then last name, then id, so
// pagination is stable across calls.
func sortUsers(users []models.User) {
	sort.Slice(users, func(i, j int) bool {
		a, b := users[i], users[j]
		af, bf := strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)
		if af != bf {
			return af < bf
		}
		al, bl := strings.ToLower(a.LastName), strings.ToLower(b.LastName)
		if al != bl {
			return al < bl
		}
		return a.ID < b.ID
	})
}

func (r *FileUserRepository) List(ctx context.Context, opts ListOptions) ([]models.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	if q := strings.ToLower(opts.Query); q != "" {
		filtered := make([]models.User, 0, len(users))
		for _, u := range users {
			if matches(u, q) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	total := len(users)
	sortUsers(users)

	start := (opts.Page - 1) * opts.Limit
	if start >= total {
		return []models.User{}, total, nil
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return users[start:end], total, nil
}

func (r *FileUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user.ID = maxID + 1

	return r.save(append(users, *user))
}

func (r *FileUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return r.save(users)
		}
	}
	return ErrNotFound
}

func (r *FileUserRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			return r.save(append(users[:i], users[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *FileUserRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
