// Package services – ParticipantService
//
// This file implements the participant half of the two-token session model
// (set-or-reset access codes, login, whoami) and the visibility engine that
// decides which gift and note fields a viewer may see.
//
// The visibility rule is the one load-bearing invariant of the product:
// a participant looking at their own page must never learn whether an item
// has been bought, and never sees notes about themselves. Everyone else gets
// the full picture, because they are the ones buying and coordinating.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/auth"
	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// ParticipantRepo defines the repository contract required by
// ParticipantService.
type ParticipantRepo interface {
	// GetParticipantByName fetches a member of a list by display name.
	GetParticipantByName(ctx context.Context, db *gorm.DB, listID, name string) (*domain.Participant, error)

	// GetParticipantByToken fetches the member of a list holding a session token.
	GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error)

	// FindParticipantByToken fetches a participant by token alone (whoami).
	FindParticipantByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Participant, error)

	// SetParticipantCode overwrites the code hash and token of a member.
	SetParticipantCode(ctx context.Context, db *gorm.DB, listID, name, codeHash, token string) error

	// RotateParticipantToken replaces a member's session token.
	RotateParticipantToken(ctx context.Context, db *gorm.DB, listID, name, token string) error

	// ListGifts returns a participant's gifts.
	ListGifts(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Gift, error)

	// ListNotes returns the notes about a participant.
	ListNotes(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Note, error)
}

// ParticipantService provides participant authentication and the page view.
type ParticipantService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the participant repository used by this service.
	Repo ParticipantRepo
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(db *gorm.DB, r ParticipantRepo) *ParticipantService {
	return &ParticipantService{DB: db, Repo: r}
}

// Session identifies an authenticated participant together with the freshly
// issued session token the transport should hand to the client.
type Session struct {
	ID    string
	Name  string
	Token string
}

// OwnGift is the self-view projection of a gift: purchase state withheld.
type OwnGift struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// PageView is the result of viewing a participant's page. Exactly one of the
// two projections is populated: OwnGifts for a self-view, Gifts+Notes for an
// other-view.
type PageView struct {
	Self        bool
	Name        string // the viewed participant's name
	CurrentUser string // the viewer's name
	OwnGifts    []OwnGift
	Gifts       []domain.Gift
	Notes       []domain.Note
}

// SetCode hashes and stores an access code for the named member and issues a
// new session token. Calling it again overwrites the previous code without
// any check: the operation doubles as a reset. An unknown member is
// ErrParticipantNotFound.
func (s *ParticipantService) SetCode(ctx context.Context, listID, name, code string) (*Session, error) {
	hash, err := auth.HashCode(code)
	if err != nil {
		return nil, err
	}

	token := auth.NewToken()
	if err := s.Repo.SetParticipantCode(ctx, s.DB, listID, name, hash, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	p, err := s.Repo.GetParticipantByName(ctx, s.DB, listID, name)
	if err != nil {
		return nil, err
	}
	return &Session{ID: p.ID, Name: p.Name, Token: token}, nil
}

// Access logs a member in with their personal access code. The failure
// ladder is deliberate and ordered: unknown member, then "never set a code",
// then wrong code. The session token rotates only on success, so a failed
// attempt cannot kick out the current session.
func (s *ParticipantService) Access(ctx context.Context, listID, name, code string) (*Session, error) {
	p, err := s.Repo.GetParticipantByName(ctx, s.DB, listID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	if p.AccessCode == nil || *p.AccessCode == "" {
		return nil, ErrNoCodeSet
	}

	if err := auth.CheckCode(*p.AccessCode, code); err != nil {
		if errors.Is(err, auth.ErrCodeMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token := auth.NewToken()
	if err := s.Repo.RotateParticipantToken(ctx, s.DB, listID, name, token); err != nil {
		return nil, err
	}
	return &Session{ID: p.ID, Name: p.Name, Token: token}, nil
}

// Whoami resolves a participant session token back to the participant,
// without list scoping (the client may not know its list yet).
func (s *ParticipantService) Whoami(ctx context.Context, token string) (*domain.Participant, error) {
	p, err := s.Repo.FindParticipantByToken(ctx, s.DB, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

// Page builds the page for targetName as seen by the holder of userToken.
//
// Self-view (viewer == target): gifts are projected down to id, description,
// and link; bought state, buyer names, and all notes are withheld so nobody
// spoils their own surprises. Other-view: full gift rows plus every note
// about the target.
func (s *ParticipantService) Page(ctx context.Context, listID, userToken, targetName string) (*PageView, error) {
	viewer, err := s.Repo.GetParticipantByToken(ctx, s.DB, listID, userToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViewerNotFound
		}
		return nil, err
	}

	target, err := s.Repo.GetParticipantByName(ctx, s.DB, listID, targetName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	gifts, err := s.Repo.ListGifts(ctx, s.DB, target.ID)
	if err != nil {
		return nil, err
	}

	view := &PageView{Name: target.Name, CurrentUser: viewer.Name}

	if target.ID == viewer.ID {
		view.Self = true
		view.OwnGifts = make([]OwnGift, 0, len(gifts))
		for _, g := range gifts {
			view.OwnGifts = append(view.OwnGifts, OwnGift{ID: g.ID, Description: g.Description, Link: g.Link})
		}
		return view, nil
	}

	notes, err := s.Repo.ListNotes(ctx, s.DB, target.ID)
	if err != nil {
		return nil, err
	}
	view.Gifts = gifts
	view.Notes = notes
	return view, nil
}
