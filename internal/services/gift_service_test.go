package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// fakeGiftRepo captures the last mutation and its arguments.
type fakeGiftRepo struct {
	actor *domain.Participant

	createdID, createdOwner, createdDesc, createdLink string

	updatedID, updatedOwner, updatedDesc, updatedLink string
	updateRows                                        int64

	deletedID, deletedOwner string
	deleteRows              int64

	boughtID, buyerName string
	boughtFlag          bool
	boughtRows          int64
}

func (f *fakeGiftRepo) GetParticipantByToken(_ context.Context, _ *gorm.DB, _, _ string) (*domain.Participant, error) {
	if f.actor == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.actor, nil
}

func (f *fakeGiftRepo) CreateGift(_ context.Context, _ *gorm.DB, id, participantID, description, link string) (*domain.Gift, error) {
	f.createdID, f.createdOwner, f.createdDesc, f.createdLink = id, participantID, description, link
	return &domain.Gift{ID: id, ParticipantID: participantID, Description: description, Link: link}, nil
}

func (f *fakeGiftRepo) UpdateGift(_ context.Context, _ *gorm.DB, id, participantID, description, link string) (int64, error) {
	f.updatedID, f.updatedOwner, f.updatedDesc, f.updatedLink = id, participantID, description, link
	return f.updateRows, nil
}

func (f *fakeGiftRepo) DeleteGift(_ context.Context, _ *gorm.DB, id, participantID string) (int64, error) {
	f.deletedID, f.deletedOwner = id, participantID
	return f.deleteRows, nil
}

func (f *fakeGiftRepo) MarkGiftBought(_ context.Context, _ *gorm.DB, id string, bought bool, buyerName string) (int64, error) {
	f.boughtID, f.boughtFlag, f.buyerName = id, bought, buyerName
	return f.boughtRows, nil
}

func TestGiftCreate_OwnedByActor(t *testing.T) {
	f := &fakeGiftRepo{actor: &domain.Participant{ID: "p1", Name: "alice"}}
	svc := NewGiftService(nil, f)

	g, err := svc.Create(context.Background(), "l1", "tok", "socks", "https://example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.createdOwner != "p1" {
		t.Fatalf("gift must be owned by the actor, got %q", f.createdOwner)
	}
	if _, err := uuid.Parse(f.createdID); err != nil {
		t.Fatalf("gift id is not a uuid: %q", f.createdID)
	}
	if g.Description != "socks" || g.Link != "https://example.com" {
		t.Fatalf("unexpected gift: %+v", g)
	}
}

func TestGiftCreate_UnknownSession(t *testing.T) {
	svc := NewGiftService(nil, &fakeGiftRepo{})

	if _, err := svc.Create(context.Background(), "l1", "stale", "socks", ""); err != ErrParticipantNotFound {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestGiftUpdate_ZeroRowsTolerated(t *testing.T) {
	f := &fakeGiftRepo{actor: &domain.Participant{ID: "p1"}, updateRows: 0}
	svc := NewGiftService(nil, f)

	// Gift belongs to someone else (or doesn't exist): still success.
	if err := svc.Update(context.Background(), "l1", "tok", "g9", "new", "link"); err != nil {
		t.Fatalf("zero-row update should succeed: %v", err)
	}
	if f.updatedID != "g9" || f.updatedOwner != "p1" {
		t.Fatalf("update must be scoped to the actor: id=%q owner=%q", f.updatedID, f.updatedOwner)
	}
}

func TestGiftDelete_ZeroRowsTolerated(t *testing.T) {
	f := &fakeGiftRepo{actor: &domain.Participant{ID: "p1"}, deleteRows: 0}
	svc := NewGiftService(nil, f)

	if err := svc.Delete(context.Background(), "l1", "tok", "g9"); err != nil {
		t.Fatalf("zero-row delete should succeed: %v", err)
	}
	if f.deletedID != "g9" || f.deletedOwner != "p1" {
		t.Fatalf("delete must be scoped to the actor: id=%q owner=%q", f.deletedID, f.deletedOwner)
	}
}

func TestGiftBuy_StampsAndClearsBuyer(t *testing.T) {
	f := &fakeGiftRepo{actor: &domain.Participant{ID: "p2", Name: "bob"}, boughtRows: 1}
	svc := NewGiftService(nil, f)

	buyer, err := svc.Buy(context.Background(), "l1", "tok", "g1", true)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if buyer != "bob" || f.buyerName != "bob" || !f.boughtFlag {
		t.Fatalf("marking bought must stamp the actor's name: buyer=%q stored=%q", buyer, f.buyerName)
	}

	buyer, err = svc.Buy(context.Background(), "l1", "tok", "g1", false)
	if err != nil {
		t.Fatalf("Buy(false): %v", err)
	}
	if buyer != "" || f.buyerName != "" || f.boughtFlag {
		t.Fatalf("un-marking must clear the buyer: buyer=%q stored=%q", buyer, f.buyerName)
	}
}
