// Package services – NoteService
//
// Notes are written about a participant (the subject) by another participant
// (the author). Authorship is recorded as the author's display name, and a
// note can only be deleted by an exact (id, author name, subject) match;
// anything else deletes zero rows and still reports success.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// NoteRepo defines the repository contract required by NoteService.
type NoteRepo interface {
	// GetParticipantByName resolves the note's subject.
	GetParticipantByName(ctx context.Context, db *gorm.DB, listID, name string) (*domain.Participant, error)

	// GetParticipantByToken resolves the note's author.
	GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error)

	// CreateNote inserts a note about a participant.
	CreateNote(ctx context.Context, db *gorm.DB, id, participantID, description, writtenBy string) (*domain.Note, error)

	// DeleteNote removes a note on exact id/author/subject match.
	DeleteNote(ctx context.Context, db *gorm.DB, id, writtenBy, participantID string) (int64, error)
}

// NoteService implements note creation and deletion.
type NoteService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the note repository used by this service.
	Repo NoteRepo
}

// NewNoteService constructs a NoteService.
func NewNoteService(db *gorm.DB, r NoteRepo) *NoteService {
	return &NoteService{DB: db, Repo: r}
}

// Create writes a note about targetName, attributed to the participant the
// session token resolves to. The subject must exist (ErrTargetNotFound) and
// so must the author (ErrWriterNotFound).
func (s *NoteService) Create(ctx context.Context, listID, token, targetName, description string) (*domain.Note, error) {
	subject, err := s.Repo.GetParticipantByName(ctx, s.DB, listID, targetName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	author, err := s.Repo.GetParticipantByToken(ctx, s.DB, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWriterNotFound
		}
		return nil, err
	}

	return s.Repo.CreateNote(ctx, s.DB, uuid.NewString(), subject.ID, description, author.Name)
}

// Delete removes a note the caller wrote about targetName. The repo-level
// predicate matches id, author name, and subject together; a mismatch on any
// of them deletes nothing, and that zero-row outcome is not an error.
func (s *NoteService) Delete(ctx context.Context, listID, token, targetName, noteID string) error {
	subject, err := s.Repo.GetParticipantByName(ctx, s.DB, listID, targetName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}

	author, err := s.Repo.GetParticipantByToken(ctx, s.DB, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWriterNotFound
		}
		return err
	}

	_, err = s.Repo.DeleteNote(ctx, s.DB, noteID, author.Name, subject.ID)
	return err
}
