// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Note model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// ListNotes returns all notes whose subject is participantID, oldest first.
func ListNotes(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Note, error) {
	var out []domain.Note
	err := db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// CreateNote inserts a note about participantID attributed to writtenBy
// (the author's display name, not an ID).
func CreateNote(ctx context.Context, db *gorm.DB, id, participantID, description, writtenBy string) (*domain.Note, error) {
	n := &domain.Note{
		ID:            id,
		Description:   description,
		WrittenBy:     writtenBy,
		ParticipantID: participantID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteNote removes a note only when id, author name, and subject all match.
// Any mismatch affects zero rows; the count is returned so callers can keep
// the silent-no-op contract.
func DeleteNote(ctx context.Context, db *gorm.DB, id, writtenBy, participantID string) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ? AND written_by = ? AND participant_id = ?", id, writtenBy, participantID).
		Delete(&domain.Note{})
	return res.RowsAffected, res.Error
}
