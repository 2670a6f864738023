package repository

import (
	"context"
	"errors"

	"userdir-backend/internal/models"
)

// ErrNotFound is reported when no record has the requested id. A plain miss
// is never surfaced as anything else.
var ErrNotFound = errors.New("user not found")

// ListOptions narrows a listing. Query is a case-insensitive substring match
// against first name, last name or email; Page is 1-based; Limit is the page
// size, already clamped by the caller.
type ListOptions struct {
	Query string
	Page  int
	Limit int
}

// UserRepository is the storage contract shared by the file-backed and the
// database-backed stores. List returns the page plus the total number of
// matching records before pagination.
type UserRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.User, int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error

	// EmailExists reports whether email belongs to a record other than
	// excludeID (0 to exclude nothing). Emails are stored lowercased, but the
	// check is case-insensitive regardless.
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
}
