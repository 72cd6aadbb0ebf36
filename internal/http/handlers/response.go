// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// The envelope contract is unusual and deliberate: business failures travel as
// HTTP 200 with an {"error": "..."} body, because the browser client branches
// on the body, not the status line. Transport-level failures (panics, rate
// limits) are the only sources of non-200 statuses.
//
// Conventions:
//   - failMsg() writes the {"error": msg} envelope; the message strings in
//     errors.go are an interface contract and must not be reworded.
//   - okMsg() writes {"message": "success"} merged with any extra payload
//     fields, matching the established client expectations.
//
// Example failure response:
//
//	HTTP/1.1 200 OK
//	{ "error": "A list with this name already exists." }
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "message": "success", "listId": "141add05-4415-4938-b5a1-17e0d3171aff" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/http/middleware"
)

// ErrorResponse is the failure envelope returned by all endpoints.
//
// The single Error field carries a human-readable message that the client
// matches on verbatim. There is no machine-readable code field; the messages
// themselves are the taxonomy.
//
// This struct is used in OpenAPI documentation via Swagger annotations.
type ErrorResponse struct {
	// Human-readable message, matched verbatim by clients
	Error string `json:"error" example:"Unable to verify credentials."`
}

// MessageResponse is the minimal success envelope.
type MessageResponse struct {
	Message string `json:"message" example:"success"`
}

// failMsg writes the business-failure envelope and stops the handler chain.
//
// The status is always 200; see the package comment for why. The underlying
// cause, when present, is logged with the request-scoped logger so operators
// can distinguish "wrong code" from "database on fire".
func failMsg(c *gin.Context, msg string, cause error) {
	if cause != nil {
		lg := middleware.LoggerFrom(c)
		lg.Warn().
			Err(cause).
			Str("user_message", msg).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(http.StatusOK, ErrorResponse{Error: msg})
}

// okMsg writes a success envelope: {"message": "success"} plus the fields of
// extra, if any. Keys in extra never collide with "message" by construction
// of the call sites.
func okMsg(c *gin.Context, extra gin.H) {
	body := gin.H{"message": msgSuccess}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
