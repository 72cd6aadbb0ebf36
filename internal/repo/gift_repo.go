// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Gift model.
//
// Edit and delete are scoped to (gift id, owner) so a participant can only
// touch their own rows; a mismatch affects zero rows and is reported back via
// RowsAffected rather than an error, because the transport deliberately does
// not distinguish "not yours" from "doesn't exist". The buy toggle is scoped
// by id alone: marking someone else's gift bought is the whole point.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// ListGifts returns all gifts owned by a participant, oldest first.
func ListGifts(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Gift, error) {
	var out []domain.Gift
	err := db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// CreateGift inserts a gift owned by participantID with the given ID.
func CreateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (*domain.Gift, error) {
	g := &domain.Gift{
		ID:            id,
		Description:   description,
		Link:          link,
		ParticipantID: participantID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGift rewrites description and link of the gift identified by id,
// provided it belongs to participantID. Returns the number of rows touched
// (0 or 1) so callers can preserve silent-no-op semantics.
func UpdateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Gift{}).
		Where("id = ? AND participant_id = ?", id, participantID).
		Updates(map[string]any{"description": description, "link": link})
	return res.RowsAffected, res.Error
}

// DeleteGift removes the gift identified by id if it belongs to
// participantID, returning the affected row count.
func DeleteGift(ctx context.Context, db *gorm.DB, id, participantID string) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ? AND participant_id = ?", id, participantID).
		Delete(&domain.Gift{})
	return res.RowsAffected, res.Error
}

// MarkGiftBought sets the bought flag and buyer name on the gift identified
// by id. No owner scoping: buyers act on other participants' rows. A missing
// id affects zero rows.
func MarkGiftBought(ctx context.Context, db *gorm.DB, id string, bought bool, buyerName string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Gift{}).
		Where("id = ?", id).
		Updates(map[string]any{"bought": bought, "buyer_name": buyerName})
	return res.RowsAffected, res.Error
}
