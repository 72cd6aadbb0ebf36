// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements declarative request-body validation for unsafe HTTP
// methods (POST). A BodySchema describes per-field rules (required, rune
// length bounds, forbidden character class), and ValidateBody enforces them
// before the handler binds the payload, so handlers never see out-of-contract
// input on the schema-guarded routes.
//
// Design goals:
//   - Keep transport concerns (shape checks, context restore) in middleware.
//   - One contractual error string per schema; the client UI matches on it.
//   - Unknown fields pass through untouched so clients can evolve freely.
//
// The validator reads and restores c.Request.Body, so downstream binding
// works unchanged.
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// unsafeChars matches characters rejected in user-supplied names and codes.
// The set blocks the usual HTML/SQL injection suspects without restricting
// ordinary names.
var unsafeChars = regexp.MustCompile(`[<>&"';*]`)

// anySpace matches any whitespace rune; used for secret fields where spaces
// would be invisible to the person typing them.
var anySpace = regexp.MustCompile(`\s`)

// FieldRule describes the validation applied to a single JSON body field.
//
// Only string fields are supported. A missing field fails when Required is
// set; a present field must be a JSON string within [MinLen, MaxLen] runes
// and must not match any of the Forbidden patterns.
type FieldRule struct {
	Name      string
	Required  bool
	MinLen    int
	MaxLen    int
	Forbidden []*regexp.Regexp
}

// BodySchema is a declarative description of a request body contract.
//
// Message is the single user-facing string returned on any violation. The
// wording is part of the API contract and is matched verbatim by clients, so
// it is deliberately not derived from the failing rule.
type BodySchema struct {
	Fields  []FieldRule
	Message string
}

// GroupSchema returns the body contract for creating or opening a group:
// a display title and a shared access code.
func GroupSchema() BodySchema {
	return BodySchema{
		Fields: []FieldRule{
			{Name: "title", Required: true, MinLen: 4, MaxLen: 30, Forbidden: []*regexp.Regexp{unsafeChars}},
			{Name: "code", Required: true, MinLen: 4, MaxLen: 20, Forbidden: []*regexp.Regexp{unsafeChars, anySpace}},
		},
		Message: "Group name must be between 4-20 letters. Code must be between 6-20 characters with no spaces or invalid characters.",
	}
}

// MemberCredentialSchema returns the body contract for member sign-up and
// login: the member's roster name and their personal access code.
func MemberCredentialSchema() BodySchema {
	return BodySchema{
		Fields: []FieldRule{
			{Name: "name", Required: true, MinLen: 4, MaxLen: 30, Forbidden: []*regexp.Regexp{unsafeChars}},
			{Name: "code", Required: true, MinLen: 4, MaxLen: 20, Forbidden: []*regexp.Regexp{unsafeChars, anySpace}},
		},
		Message: "Name must be between 4-20 letters. Code must be between 6-20 characters with no spaces or invalid characters.",
	}
}

// ValidateBody returns a Gin middleware that enforces schema on the JSON
// request body.
//
// Behavior:
//   - Reads the body (restoring it afterwards so handlers can bind normally).
//   - A body that is not a JSON object counts as a violation.
//   - On violation, responds HTTP 200 with {"error": schema.Message} and
//     aborts; business failures share the same envelope, so clients have one
//     code path.
//   - On success, invokes the next handler with the body intact.
func ValidateBody(schema BodySchema) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWithMessage(c, schema.Message)
			return
		}
		// Restore for downstream binding regardless of outcome.
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]json.RawMessage
		if err := json.Unmarshal(raw, &body); err != nil {
			abortWithMessage(c, schema.Message)
			return
		}

		for _, f := range schema.Fields {
			rawVal, present := body[f.Name]
			if !present {
				if f.Required {
					abortWithMessage(c, schema.Message)
					return
				}
				continue
			}

			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				// Present but not a string.
				abortWithMessage(c, schema.Message)
				return
			}

			if n := utf8.RuneCountInString(s); n < f.MinLen || n > f.MaxLen {
				abortWithMessage(c, schema.Message)
				return
			}
			for _, re := range f.Forbidden {
				if re.MatchString(s) {
					abortWithMessage(c, schema.Message)
					return
				}
			}
		}

		c.Next()
	}
}

// abortWithMessage writes the contractual error envelope and stops the chain.
func abortWithMessage(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusOK, gin.H{"error": msg})
}
