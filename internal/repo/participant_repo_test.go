package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

func TestInsertAndListParticipants_DefaultsAndOrder(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("insert alice: %v", err)
	}
	// Force distinct created_at so insertion order is observable.
	time.Sleep(5 * time.Millisecond)
	if err := InsertParticipant(context.Background(), db, "p2", "l1", "bob"); err != nil {
		t.Fatalf("insert bob: %v", err)
	}
	if err := InsertParticipant(context.Background(), db, "px", "other", "carol"); err != nil {
		t.Fatalf("insert carol: %v", err)
	}

	members, err := ListParticipants(context.Background(), db, "l1")
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members of l1, got %d", len(members))
	}
	if members[0].Name != "alice" || members[1].Name != "bob" {
		t.Fatalf("unexpected order: %+v", members)
	}

	// Fresh members carry the defaults until they act.
	a := members[0]
	if a.Recipients != "Anybody" {
		t.Fatalf("Recipients default = %q; want Anybody", a.Recipients)
	}
	if a.Emoji != 128512 {
		t.Fatalf("Emoji default = %d; want 128512", a.Emoji)
	}
	if a.AccessCode != nil || a.UserToken != nil {
		t.Fatalf("access code/token should start unset: %+v", a)
	}
}

func TestGetParticipantByName_ExactMatchOnly(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := GetParticipantByName(context.Background(), db, "l1", "alice"); err != nil {
		t.Fatalf("exact name should match: %v", err)
	}
	if _, err := GetParticipantByName(context.Background(), db, "other", "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong list should be ErrNotFound, got %v", err)
	}
	if _, err := GetParticipantByName(context.Background(), db, "l1", "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown name should be ErrNotFound, got %v", err)
	}
}

func TestSetParticipantCode_OverwritesAndReportsMissing(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := SetParticipantCode(context.Background(), db, "l1", "alice", "hash1", "tok1"); err != nil {
		t.Fatalf("first SetParticipantCode: %v", err)
	}
	// Setting again overwrites without any prior-code check.
	if err := SetParticipantCode(context.Background(), db, "l1", "alice", "hash2", "tok2"); err != nil {
		t.Fatalf("second SetParticipantCode: %v", err)
	}

	p, err := GetParticipantByName(context.Background(), db, "l1", "alice")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.AccessCode == nil || *p.AccessCode != "hash2" {
		t.Fatalf("access code not overwritten: %+v", p.AccessCode)
	}
	if p.UserToken == nil || *p.UserToken != "tok2" {
		t.Fatalf("token not overwritten: %+v", p.UserToken)
	}

	if err := SetParticipantCode(context.Background(), db, "l1", "nobody", "h", "t"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown member should be ErrRecordNotFound, got %v", err)
	}
}

func TestRotateParticipantToken(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SetParticipantCode(context.Background(), db, "l1", "alice", "h", "old"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	if err := RotateParticipantToken(context.Background(), db, "l1", "alice", "new"); err != nil {
		t.Fatalf("RotateParticipantToken: %v", err)
	}
	if _, err := GetParticipantByToken(context.Background(), db, "l1", "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old token should no longer resolve, got %v", err)
	}
	p, err := GetParticipantByToken(context.Background(), db, "l1", "new")
	if err != nil {
		t.Fatalf("new token should resolve: %v", err)
	}
	if p.Name != "alice" {
		t.Fatalf("unexpected participant: %+v", p)
	}
}

func TestFindParticipantByToken_NoListScope(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SetParticipantCode(context.Background(), db, "l1", "alice", "h", "tok"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	p, err := FindParticipantByToken(context.Background(), db, "tok")
	if err != nil {
		t.Fatalf("FindParticipantByToken: %v", err)
	}
	if p.ID != "p1" {
		t.Fatalf("unexpected participant: %+v", p)
	}
	if _, err := FindParticipantByToken(context.Background(), db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown token should be ErrNotFound, got %v", err)
	}
}

func TestDeleteParticipants_LeavesGiftAndNoteOrphans(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{}, &domain.Gift{}, &domain.Note{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	if _, err := CreateGift(context.Background(), db, "g1", "p1", "socks", ""); err != nil {
		t.Fatalf("seed gift: %v", err)
	}
	if _, err := CreateNote(context.Background(), db, "n1", "p1", "size M", "bob"); err != nil {
		t.Fatalf("seed note: %v", err)
	}

	if err := DeleteParticipants(context.Background(), db, "l1"); err != nil {
		t.Fatalf("DeleteParticipants: %v", err)
	}

	members, err := ListParticipants(context.Background(), db, "l1")
	if err != nil || len(members) != 0 {
		t.Fatalf("roster should be empty: members=%v err=%v", members, err)
	}

	// Gifts and notes of the removed member persist as orphans. This is the
	// established behavior of roster replacement, not an accident.
	gifts, err := ListGifts(context.Background(), db, "p1")
	if err != nil || len(gifts) != 1 {
		t.Fatalf("orphan gift should persist: gifts=%v err=%v", gifts, err)
	}
	notes, err := ListNotes(context.Background(), db, "p1")
	if err != nil || len(notes) != 1 {
		t.Fatalf("orphan note should persist: notes=%v err=%v", notes, err)
	}
}

func TestUpdateRecipients_UnknownNameIsNoop(t *testing.T) {
	db := newRepoDB(t, &domain.Participant{})

	if err := InsertParticipant(context.Background(), db, "p1", "l1", "alice"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateRecipients(context.Background(), db, "l1", "alice", "bob, carol"); err != nil {
		t.Fatalf("UpdateRecipients: %v", err)
	}
	p, err := GetParticipantByName(context.Background(), db, "l1", "alice")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.Recipients != "bob, carol" {
		t.Fatalf("Recipients = %q; want %q", p.Recipients, "bob, carol")
	}

	// Unknown name: zero rows touched, no error.
	if err := UpdateRecipients(context.Background(), db, "l1", "nobody", "x"); err != nil {
		t.Fatalf("unknown name should be a silent no-op, got %v", err)
	}
}
