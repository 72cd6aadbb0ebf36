package repo

import (
	"context"
	"testing"
	"time"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

func TestCreateAndListNotes_SubjectScopedAndOrdered(t *testing.T) {
	db := newRepoDB(t, &domain.Note{})

	n, err := CreateNote(context.Background(), db, "n1", "p1", "size M", "bob")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if n.WrittenBy != "bob" || n.ParticipantID != "p1" {
		t.Fatalf("unexpected note: %+v", n)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := CreateNote(context.Background(), db, "n2", "p1", "has the book already", "carol"); err != nil {
		t.Fatalf("CreateNote n2: %v", err)
	}
	if _, err := CreateNote(context.Background(), db, "nx", "p2", "other subject", "bob"); err != nil {
		t.Fatalf("CreateNote nx: %v", err)
	}

	notes, err := ListNotes(context.Background(), db, "p1")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != "n1" || notes[1].ID != "n2" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestDeleteNote_ExactMatchOnly(t *testing.T) {
	db := newRepoDB(t, &domain.Note{})

	if _, err := CreateNote(context.Background(), db, "n1", "p1", "x", "bob"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Wrong author: zero rows.
	if n, err := DeleteNote(context.Background(), db, "n1", "carol", "p1"); err != nil || n != 0 {
		t.Fatalf("wrong author should touch 0 rows: n=%d err=%v", n, err)
	}
	// Wrong subject: zero rows.
	if n, err := DeleteNote(context.Background(), db, "n1", "bob", "p2"); err != nil || n != 0 {
		t.Fatalf("wrong subject should touch 0 rows: n=%d err=%v", n, err)
	}
	// Exact match deletes.
	if n, err := DeleteNote(context.Background(), db, "n1", "bob", "p1"); err != nil || n != 1 {
		t.Fatalf("exact match should delete: n=%d err=%v", n, err)
	}
	notes, _ := ListNotes(context.Background(), db, "p1")
	if len(notes) != 0 {
		t.Fatalf("note should be gone: %+v", notes)
	}
}
