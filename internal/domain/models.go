// Package domain defines the persistence models for lists, participants,
// gifts, and notes. These types are mapped with GORM and form the core data
// layer of the gift-list application.
package domain

import "time"

// List represents a gift-exchange group. Entry to a list is protected by a
// shared access code; a successful open rotates the opaque session token,
// so only one list session is active at a time.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Title: unique human-readable list name (uniqueness enforced at creation
//     and by the DB index).
//   - AccessCode: bcrypt hash of the shared access code. Never exposed.
//   - ListToken: current opaque bearer token; nil until first issued.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type List struct {
	ID         string    `json:"id"    gorm:"type:char(36);primaryKey"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null;uniqueIndex"`
	AccessCode string    `json:"-"     gorm:"type:varchar(255);not null"`
	ListToken  *string   `json:"-"     gorm:"type:char(36);index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName returns the database table name for List.
func (List) TableName() string { return "lists" }

// Participant is a named member of a list. Names are stored lowercased and
// are unique within a list by convention (the roster is replaced wholesale,
// never edited row by row). The access code is absent until the participant
// first sets one.
//
// ListID is intentionally a bare indexed column with no declared foreign-key
// constraint: replacing a roster hard-deletes participant rows and leaves
// gift/note rows referencing them in place.
type Participant struct {
	ID         string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name       string    `json:"name"       gorm:"type:varchar(255);not null;index:idx_list_members,priority:2"`
	Emoji      int       `json:"emoji"      gorm:"not null;default:128512"`
	Recipients string    `json:"recipients" gorm:"type:text;not null;default:'Anybody'"`
	AccessCode *string   `json:"-"          gorm:"type:varchar(255)"`
	UserToken  *string   `json:"-"          gorm:"type:char(36);index"`
	ListID     string    `json:"-"          gorm:"type:char(36);not null;index:idx_list_members,priority:1"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName returns the database table name for Participant.
func (Participant) TableName() string { return "participants" }

// Gift is a wishlist entry owned by a participant. The Bought flag and
// BuyerName are written by other participants and must never be shown to the
// owner; that projection happens in the service layer, not here.
type Gift struct {
	ID            string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	Link          string    `json:"link"        gorm:"type:text"`
	Bought        bool      `json:"bought"      gorm:"not null;default:false"`
	BuyerName     string    `json:"buyer_name"  gorm:"type:varchar(255)"`
	ParticipantID string    `json:"-"           gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName returns the database table name for Gift.
func (Gift) TableName() string { return "gifts" }

// Note is a free-text remark about a participant (the subject), written by
// another participant. WrittenBy stores the author's display name; only an
// exact (id, author, subject) match may delete a note.
type Note struct {
	ID            string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	WrittenBy     string    `json:"written_by"  gorm:"type:varchar(255);not null"`
	ParticipantID string    `json:"-"           gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName returns the database table name for Note.
func (Note) TableName() string { return "notes" }
