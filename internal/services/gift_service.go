// Package services – GiftService
//
// Gift mutations re-derive the acting participant from the session token on
// every call; client-supplied IDs only pick the target row. Edits and
// deletes are confined to the actor's own gifts, while the buy toggle acts
// on other people's gifts by design. Mutations that match zero rows still
// succeed: the transport never distinguishes "doesn't exist" from
// "not yours".
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// GiftRepo defines the repository contract required by GiftService.
type GiftRepo interface {
	// GetParticipantByToken resolves the acting participant.
	GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error)

	// CreateGift inserts a gift owned by a participant.
	CreateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (*domain.Gift, error)

	// UpdateGift rewrites a gift scoped to its owner; returns rows affected.
	UpdateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (int64, error)

	// DeleteGift removes a gift scoped to its owner; returns rows affected.
	DeleteGift(ctx context.Context, db *gorm.DB, id, participantID string) (int64, error)

	// MarkGiftBought sets bought/buyer_name by gift id; returns rows affected.
	MarkGiftBought(ctx context.Context, db *gorm.DB, id string, bought bool, buyerName string) (int64, error)
}

// GiftService implements the wishlist mutations.
type GiftService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the gift repository used by this service.
	Repo GiftRepo
}

// NewGiftService constructs a GiftService.
func NewGiftService(db *gorm.DB, r GiftRepo) *GiftService {
	return &GiftService{DB: db, Repo: r}
}

// resolveActor maps the session token to the acting list member.
func (s *GiftService) resolveActor(ctx context.Context, listID, token string) (*domain.Participant, error) {
	p, err := s.Repo.GetParticipantByToken(ctx, s.DB, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create adds a gift to the acting participant's own wishlist.
func (s *GiftService) Create(ctx context.Context, listID, token, description, link string) (*domain.Gift, error) {
	actor, err := s.resolveActor(ctx, listID, token)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateGift(ctx, s.DB, uuid.NewString(), actor.ID, description, link)
}

// Update rewrites one of the acting participant's own gifts. A gift ID that
// is missing or belongs to someone else matches nothing and still succeeds.
func (s *GiftService) Update(ctx context.Context, listID, token, giftID, description, link string) error {
	actor, err := s.resolveActor(ctx, listID, token)
	if err != nil {
		return err
	}
	_, err = s.Repo.UpdateGift(ctx, s.DB, giftID, actor.ID, description, link)
	return err
}

// Delete removes one of the acting participant's own gifts, with the same
// zero-row tolerance as Update.
func (s *GiftService) Delete(ctx context.Context, listID, token, giftID string) error {
	actor, err := s.resolveActor(ctx, listID, token)
	if err != nil {
		return err
	}
	_, err = s.Repo.DeleteGift(ctx, s.DB, giftID, actor.ID)
	return err
}

// Buy toggles the bought flag on any gift in the list. Marking bought stamps
// the toggler's name as buyer; un-marking clears it to empty. The buyer name
// used is returned for the response echo. A missing gift ID is a silent
// no-op.
func (s *GiftService) Buy(ctx context.Context, listID, token, giftID string, bought bool) (string, error) {
	actor, err := s.resolveActor(ctx, listID, token)
	if err != nil {
		return "", err
	}

	buyer := ""
	if bought {
		buyer = actor.Name
	}
	if _, err := s.Repo.MarkGiftBought(ctx, s.DB, giftID, bought, buyer); err != nil {
		return "", err
	}
	return buyer, nil
}
