package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"userdir-backend/internal/models"
)

// GormUserRepository persists users in a relational database through GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) filtered(ctx context.Context, query string) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.User{})
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		tx = tx.Where(
			"lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?",
			like, like, like,
		)
	}
	return tx
}

func (r *GormUserRepository) List(ctx context.Context, opts ListOptions) ([]models.User, int, error) {
	var total int64
	if err := r.filtered(ctx, opts.Query).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	users := make([]models.User, 0, opts.Limit)
	err := r.filtered(ctx, opts.Query).
		Order("lower(first_name), lower(last_name), id").
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, int(total), nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the record; the id never changes.
// An explicit column map is used so that false and NULL values are written.
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	tx := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"email":          user.Email,
		"dob":            user.DOB,
		"image_url":      user.ImageURL,
		"accepted_terms": user.AcceptedTerms,
		"bio":            user.Bio,
	})
	if tx.Error != nil {
		return fmt.Errorf("failed to update user: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id int) error {
	tx := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete user: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.User{}).Where("lower(email) = lower(?)", email)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return count > 0, nil
}
