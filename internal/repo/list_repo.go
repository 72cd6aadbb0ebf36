// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the List model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a list is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Token lookups combine the row selector with the stored bearer token, so a
// stale token simply fails to match and surfaces as ErrNotFound. The service
// layer translates that into its credential errors.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateList inserts a new list row with a pre-hashed access code and an
// initial session token. The caller supplies the ID and token (minted by the
// auth package) so the service layer can hand them to the transport without
// re-reading the row.
func CreateList(ctx context.Context, db *gorm.DB, id, title, codeHash, token string) (*domain.List, error) {
	l := &domain.List{
		ID:         id,
		Title:      title,
		AccessCode: codeHash,
		ListToken:  &token,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// GetListByTitle fetches a list by its unique title, or ErrNotFound.
func GetListByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.List, error) {
	var l domain.List
	if err := db.WithContext(ctx).Where("title = ?", title).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// GetListByToken fetches a list by ID and current session token.
// A stale or foreign token yields ErrNotFound.
func GetListByToken(ctx context.Context, db *gorm.DB, id, token string) (*domain.List, error) {
	var l domain.List
	err := db.WithContext(ctx).
		Where("id = ? AND list_token = ?", id, token).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetListByTitleAndToken fetches a list by title and current session token.
// The roster-replace operation addresses lists this way.
func GetListByTitleAndToken(ctx context.Context, db *gorm.DB, title, token string) (*domain.List, error) {
	var l domain.List
	err := db.WithContext(ctx).
		Where("title = ? AND list_token = ?", title, token).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// TitleExists reports whether any list already uses the given title.
func TitleExists(ctx context.Context, db *gorm.DB, title string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.List{}).
		Where("title = ?", title).
		Count(&n).Error
	return n > 0, err
}

// RotateListToken stores a fresh session token on the list identified by id,
// invalidating the previous one. Returns ErrNotFound if the list is missing.
func RotateListToken(ctx context.Context, db *gorm.DB, id, token string) error {
	res := db.WithContext(ctx).
		Model(&domain.List{}).
		Where("id = ?", id).
		Update("list_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
