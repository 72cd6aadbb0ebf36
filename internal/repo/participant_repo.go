// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Participant
// model, including the destructive roster-replace primitives.
//
// Participants are addressed three ways: by (list, name) for code setup and
// note targeting, by (list, token) for the session-resolved caller, and by
// token alone for the whoami lookup. All token lookups surface stale tokens
// as ErrNotFound.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// ListParticipants returns every member of a list in insertion order.
func ListParticipants(ctx context.Context, db *gorm.DB, listID string) ([]domain.Participant, error) {
	var out []domain.Participant
	err := db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// GetParticipantByName fetches a member of listID by display name, or
// ErrNotFound. Names are stored lowercased; the caller is expected to pass
// the name as the client sent it (lookups on un-normalized names miss,
// matching the original contract).
func GetParticipantByName(ctx context.Context, db *gorm.DB, listID, name string) (*domain.Participant, error) {
	var p domain.Participant
	err := db.WithContext(ctx).
		Where("list_id = ? AND name = ?", listID, name).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetParticipantByToken fetches the member of listID holding the given
// session token, or ErrNotFound.
func GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error) {
	var p domain.Participant
	err := db.WithContext(ctx).
		Where("list_id = ? AND user_token = ?", listID, token).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindParticipantByToken fetches a participant by session token alone,
// without list scoping. Used by the whoami lookup, where the client has a
// token but no list context yet.
func FindParticipantByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Participant, error) {
	var p domain.Participant
	if err := db.WithContext(ctx).Where("user_token = ?", token).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SetParticipantCode overwrites the stored access-code hash and session token
// for the (listID, name) row. There is deliberately no prior-code check: the
// operation doubles as "reset code". Returns ErrNotFound when no such member
// exists (zero rows updated).
func SetParticipantCode(ctx context.Context, db *gorm.DB, listID, name, codeHash, token string) error {
	res := db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("list_id = ? AND name = ?", listID, name).
		Updates(map[string]any{"access_code": codeHash, "user_token": token})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RotateParticipantToken stores a fresh session token on the (listID, name)
// row, invalidating the previous one.
func RotateParticipantToken(ctx context.Context, db *gorm.DB, listID, name, token string) error {
	res := db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("list_id = ? AND name = ?", listID, name).
		Update("user_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteParticipants hard-deletes every member row of a list. Gifts and notes
// referencing the removed rows are left untouched; roster replacement accepts
// orphaned rows rather than cascading.
func DeleteParticipants(ctx context.Context, db *gorm.DB, listID string) error {
	return db.WithContext(ctx).
		Where("list_id = ?", listID).
		Delete(&domain.Participant{}).Error
}

// InsertParticipant inserts a single roster member with the given ID and
// already-normalized name. Access code and token start unset.
func InsertParticipant(ctx context.Context, db *gorm.DB, id, listID, name string) error {
	p := &domain.Participant{
		ID:         id,
		Name:       name,
		Recipients: "Anybody",
		Emoji:      128512,
		ListID:     listID,
		CreatedAt:  time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(p).Error
}

// UpdateRecipients stores the advisory comma-joined recipients string on the
// (listID, name) row. A name that matches no row is a no-op, not an error.
func UpdateRecipients(ctx context.Context, db *gorm.DB, listID, name, recipients string) error {
	return db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("list_id = ? AND name = ?", listID, name).
		Update("recipients", recipients).Error
}
