package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
)

// newRepoDB opens a throwaway SQLite database in a temp dir and migrates the
// given models. Shared by all repo tests in this package.
func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateList_PersistsHashAndToken(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	l, err := CreateList(context.Background(), db, "l1", "Smith Family", "hashed", "tok-1")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if l.ID != "l1" || l.Title != "Smith Family" || l.AccessCode != "hashed" {
		t.Fatalf("unexpected List fields: %+v", l)
	}
	if l.ListToken == nil || *l.ListToken != "tok-1" {
		t.Fatalf("token not set: %+v", l.ListToken)
	}

	// round-trip
	var got domain.List
	if err := db.First(&got, "id = ?", "l1").Error; err != nil {
		t.Fatalf("load created list: %v", err)
	}
	if got.AccessCode != "hashed" || got.ListToken == nil || *got.ListToken != "tok-1" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateList_DuplicateTitleRejected(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	if _, err := CreateList(context.Background(), db, "l1", "Same", "h", "t1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := CreateList(context.Background(), db, "l2", "Same", "h", "t2"); err == nil {
		t.Fatalf("expected unique constraint violation on duplicate title")
	}
}

func TestGetListByTitle_FoundAndNotFound(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	if _, err := GetListByTitle(context.Background(), db, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := CreateList(context.Background(), db, "l1", "Found Me", "h", "t"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := GetListByTitle(context.Background(), db, "Found Me")
	if err != nil {
		t.Fatalf("GetListByTitle: %v", err)
	}
	if got.ID != "l1" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestGetListByToken_StaleTokenMisses(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	if _, err := CreateList(context.Background(), db, "l1", "T", "h", "current"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := GetListByToken(context.Background(), db, "l1", "current"); err != nil {
		t.Fatalf("current token should match: %v", err)
	}
	if _, err := GetListByToken(context.Background(), db, "l1", "stale"); err != ErrNotFound {
		t.Fatalf("stale token should be ErrNotFound, got %v", err)
	}
	if _, err := GetListByToken(context.Background(), db, "other", "current"); err != ErrNotFound {
		t.Fatalf("wrong id should be ErrNotFound, got %v", err)
	}
}

func TestGetListByTitleAndToken(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	if _, err := CreateList(context.Background(), db, "l1", "Roster List", "h", "tok"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetListByTitleAndToken(context.Background(), db, "Roster List", "tok")
	if err != nil {
		t.Fatalf("GetListByTitleAndToken: %v", err)
	}
	if got.ID != "l1" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if _, err := GetListByTitleAndToken(context.Background(), db, "Roster List", "bad"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for wrong token, got %v", err)
	}
}

func TestTitleExists(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	taken, err := TitleExists(context.Background(), db, "X")
	if err != nil || taken {
		t.Fatalf("empty table: taken=%v err=%v", taken, err)
	}

	if _, err := CreateList(context.Background(), db, "l1", "X", "h", "t"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	taken, err = TitleExists(context.Background(), db, "X")
	if err != nil || !taken {
		t.Fatalf("expected taken=true, got taken=%v err=%v", taken, err)
	}
}

func TestRotateListToken_InvalidatesOld(t *testing.T) {
	db := newRepoDB(t, &domain.List{})

	if _, err := CreateList(context.Background(), db, "l1", "T", "h", "old"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := RotateListToken(context.Background(), db, "l1", "new"); err != nil {
		t.Fatalf("RotateListToken: %v", err)
	}
	if _, err := GetListByToken(context.Background(), db, "l1", "old"); err != ErrNotFound {
		t.Fatalf("old token should no longer match, got %v", err)
	}
	if _, err := GetListByToken(context.Background(), db, "l1", "new"); err != nil {
		t.Fatalf("new token should match: %v", err)
	}

	// Missing list id -> ErrNotFound
	if err := RotateListToken(context.Background(), db, "missing", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing list, got %v", err)
	}
}
