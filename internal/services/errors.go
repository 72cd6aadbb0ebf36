// Package services defines the business logic for lists, participants,
// gifts, and notes. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer; the
// handler layer translates them into the user-facing message contract
// (which deliberately collapses several of them into generic strings).
package services

import "errors"

var (
	// ErrTitleTaken indicates a list creation with an already-used title.
	ErrTitleTaken = errors.New("list title already exists")

	// ErrInvalidCredentials is returned for a wrong access code and for an
	// unknown list title on open. The two cases are indistinguishable on
	// purpose, to avoid title enumeration through the open operation.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrListNotFound indicates that no list matches the given selector and
	// session token. It also masks stale-token failures.
	ErrListNotFound = errors.New("list not found")

	// ErrNoCodeSet is returned when a participant tries to log in before
	// ever having set an access code.
	ErrNoCodeSet = errors.New("no access code set")

	// ErrParticipantNotFound indicates that the caller's session token did
	// not resolve to a member of the given list.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrViewerNotFound indicates the viewing participant could not be
	// resolved when building a participant page.
	ErrViewerNotFound = errors.New("viewing participant not found")

	// ErrTargetNotFound indicates the participant being viewed (or written
	// about) does not exist in the list.
	ErrTargetNotFound = errors.New("target participant not found")

	// ErrWriterNotFound indicates the note author could not be resolved from
	// the session token.
	ErrWriterNotFound = errors.New("writing participant not found")
)
