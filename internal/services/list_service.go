// Package services – ListService
//
// This file implements the ListService, which manages the list lifecycle:
// creation (with title uniqueness), opening (access-code check plus session
// token rotation), the authenticated list view, the destructive roster
// replacement, and recipient assignments.
//
// Service-level errors (e.g. ErrTitleTaken, ErrInvalidCredentials) are
// returned for predictable cases so handlers can map them to the response
// contract consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/auth"
	"github.com/dkarlsen/go-gift-backend/internal/domain"
	"github.com/dkarlsen/go-gift-backend/internal/utils"
)

// ListRepo defines the repository contract required by ListService.
// Implementations are responsible for persistence of list aggregates and
// roster rows.
type ListRepo interface {
	// CreateList inserts a new list row with a hashed code and initial token.
	CreateList(ctx context.Context, db *gorm.DB, id, title, codeHash, token string) (*domain.List, error)

	// TitleExists reports whether a list with this title already exists.
	TitleExists(ctx context.Context, db *gorm.DB, title string) (bool, error)

	// GetListByTitle fetches a list by unique title.
	GetListByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.List, error)

	// GetListByToken fetches a list by ID and current session token.
	GetListByToken(ctx context.Context, db *gorm.DB, id, token string) (*domain.List, error)

	// GetListByTitleAndToken fetches a list by title and current session token.
	GetListByTitleAndToken(ctx context.Context, db *gorm.DB, title, token string) (*domain.List, error)

	// RotateListToken replaces the stored session token.
	RotateListToken(ctx context.Context, db *gorm.DB, id, token string) error

	// ListParticipants returns the list's roster.
	ListParticipants(ctx context.Context, db *gorm.DB, listID string) ([]domain.Participant, error)

	// DeleteParticipants removes the entire roster of a list.
	DeleteParticipants(ctx context.Context, db *gorm.DB, listID string) error

	// InsertParticipant inserts one roster member.
	InsertParticipant(ctx context.Context, db *gorm.DB, id, listID, name string) error

	// UpdateRecipients stores a member's advisory recipients string.
	UpdateRecipients(ctx context.Context, db *gorm.DB, listID, name, recipients string) error
}

// ListService provides list-level operations: create, open, find, roster
// replacement, and recipient updates. It owns the list half of the two-token
// session model.
type ListService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the list repository used by this service.
	Repo ListRepo
}

// NewListService constructs a ListService.
func NewListService(db *gorm.DB, r ListRepo) *ListService {
	return &ListService{DB: db, Repo: r}
}

// Member is one roster entry of the authenticated list view.
type Member struct {
	Name       string `json:"name"`
	Recipients string `json:"recipients"`
}

// ListView is the authenticated view of a list: identity plus roster.
type ListView struct {
	ID    string   `json:"_id"`
	Title string   `json:"title"`
	Users []Member `json:"users"`
}

// RecipientUpdate assigns the people a named member buys for.
type RecipientUpdate struct {
	Name       string
	Recipients []string
}

// rosterCaser lowercases roster names Unicode-correctly; the display layer
// re-capitalizes as it sees fit.
var rosterCaser = cases.Lower(language.Und)

// Create makes a new list guarded by the given access code and issues its
// first session token. Returns ErrTitleTaken when the title is already used;
// uniqueness is double-checked by the DB index, reported the same way.
func (s *ListService) Create(ctx context.Context, title, code string) (*domain.List, error) {
	taken, err := s.Repo.TitleExists(ctx, s.DB, title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleTaken
	}

	hash, err := auth.HashCode(code)
	if err != nil {
		return nil, err
	}

	l, err := s.Repo.CreateList(ctx, s.DB, uuid.NewString(), title, hash, auth.NewToken())
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return l, nil
}

// Open authenticates against an existing list. An unknown title and a wrong
// code both come back as ErrInvalidCredentials. On success the session token
// is rotated, invalidating any previously issued list token, and the list is
// returned with the fresh token set.
func (s *ListService) Open(ctx context.Context, title, code string) (*domain.List, error) {
	l, err := s.Repo.GetListByTitle(ctx, s.DB, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckCode(l.AccessCode, code); err != nil {
		if errors.Is(err, auth.ErrCodeMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token := auth.NewToken()
	if err := s.Repo.RotateListToken(ctx, s.DB, l.ID, token); err != nil {
		return nil, err
	}
	l.ListToken = &token
	return l, nil
}

// Find returns the authenticated view of a list: title plus the roster with
// each member's advisory recipients string. The token must be the list's
// current session token; anything else is ErrListNotFound.
func (s *ListService) Find(ctx context.Context, listID, token string) (*ListView, error) {
	l, err := s.Repo.GetListByToken(ctx, s.DB, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	members, err := s.Repo.ListParticipants(ctx, s.DB, l.ID)
	if err != nil {
		return nil, err
	}

	view := &ListView{ID: l.ID, Title: l.Title, Users: make([]Member, 0, len(members))}
	for _, m := range members {
		view.Users = append(view.Users, Member{Name: m.Name, Recipients: m.Recipients})
	}
	return view, nil
}

// ReplaceRoster wipes the list's entire roster and reinserts the given names,
// lowercased. This is deliberately destructive (the edit surface is "retype
// the roster"), runs without a transaction, and does not cascade: gifts and
// notes of removed members stay behind as orphans.
//
// The list is addressed by title plus session token, matching the transport.
func (s *ListService) ReplaceRoster(ctx context.Context, title, token string, names []string) error {
	l, err := s.Repo.GetListByTitleAndToken(ctx, s.DB, title, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}

	if err := s.Repo.DeleteParticipants(ctx, s.DB, l.ID); err != nil {
		return err
	}
	for _, name := range names {
		lowered := rosterCaser.String(name)
		if err := s.Repo.InsertParticipant(ctx, s.DB, uuid.NewString(), l.ID, lowered); err != nil {
			return err
		}
	}
	return nil
}

// SetRecipients stores each member's advisory "I buy for" names, joined into
// the single recipients column. Updates for names that are not on the roster
// silently touch nothing.
func (s *ListService) SetRecipients(ctx context.Context, listID, token string, updates []RecipientUpdate) error {
	l, err := s.Repo.GetListByToken(ctx, s.DB, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}

	for _, u := range updates {
		joined := utils.JoinNames(u.Recipients)
		if err := s.Repo.UpdateRecipients(ctx, s.DB, l.ID, u.Name, joined); err != nil {
			return err
		}
	}
	return nil
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
