// Package handlers provides HTTP handler implementations for the public API.
//
// This file implements the cookie transport for the two-token session model.
// A list session and a member session are carried in separate cookies so that
// the list token (shared with everyone who knows the group code) never has to
// grant per-member authority, and vice versa.
//
// Both cookies are HttpOnly and SameSite=None: the browser client is served
// from a different origin, so cross-site cookie delivery is required, which in
// turn requires Secure on any modern browser. Secure can only be disabled via
// configuration for plain-HTTP local development.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// listCookie carries the list session token issued by create/open.
	listCookie = "list"
	// userCookie carries the member session token issued by sign-up/login.
	userCookie = "user"
)

// CookieOptions controls attributes of the session cookies.
//
// Secure should only be false for local plain-HTTP development; browsers
// refuse SameSite=None cookies without it. MaxAge bounds the session cookie
// lifetime client-side; the server-side tokens live until the next rotation.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// setSessionCookie writes a session cookie with the standard attributes.
// gin.Context.SetCookie cannot express SameSite per call site cleanly, so the
// http.Cookie form is used directly.
func setSessionCookie(c *gin.Context, name, value string, opts CookieOptions) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expires a session cookie immediately. The attributes
// must match the ones used at set time or browsers keep the original.
func clearSessionCookie(c *gin.Context, name string, opts CookieOptions) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// cookieValue reads a cookie, returning "" when absent. Downstream token
// lookups treat "" as "no session", which resolves to the contractual
// failure for each endpoint.
func cookieValue(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}
