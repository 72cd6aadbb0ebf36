// Package handlers defines the user-facing message strings used across all
// API endpoints.
//
// This file centralizes the exact strings written into response envelopes.
// Clients match on these byte-for-byte, so they are frozen: capitalization,
// punctuation, and even the inconsistencies between them are part of the
// interface. Do not "fix" the wording.
//
// Conventions:
//   - Success is always the literal "success" in the "message" field.
//   - Failures carry one of the msg* strings in the "error" field.
//   - Several distinct internal errors intentionally collapse into the same
//     user-facing string (e.g., unknown title and wrong code on open).
package handlers

const (
	msgSuccess = "success"

	// List lifecycle.
	msgListTitleTaken   = "A list with this name already exists."
	msgListCreateFailed = "There was an error creating your list."
	msgListOpenDenied   = "incorrect username or password."
	msgListOpenFailed   = "There was an error accessing your list."

	// List session.
	msgNotLoggedIn  = "You are not logged in"
	msgVerifyFailed = "Unable to verify credentials."

	// Roster and recipients.
	msgRosterUpdateFailed = "There was an error updating users"

	// Member credentials.
	msgCodeCreateFailed = "There was an error creating your access code."
	msgNoCodeYet        = "You haven't created an access code yet."
	msgLoginFailed      = "There was an error logging in."
	msgNoToken          = "No token."

	// Member pages.
	msgPleaseLogIn         = "Please log in to view this page."
	msgCurrentUserNotFound = "Error finding Current User."
	msgViewedUserNotFound  = "Error finding Viewed User."
	msgWritingUserNotFound = "Error finding writing User."

	// Mutations.
	msgGiftSaveFailed = "There was an error saving your gift"
	msgNoteSaveFailed = "There was an error saving your note"

	// Catch-all.
	msgGeneric = "There was an error processing your request"
)
