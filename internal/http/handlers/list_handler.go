// List HTTP handlers.
//
// This file exposes the list lifecycle endpoints:
//   - POST /home/new          (create a list)
//   - POST /home/open         (open an existing list)
//   - POST /list/find         (authenticated list view)
//   - POST /list/create       (destructive roster replacement)
//   - POST /list/recipients   (advisory recipient assignments)
//
// Handlers are transport-thin: they read cookies and bind JSON, call the
// application services, and translate results into the response envelope.
// All endpoints are POST and all failures are HTTP 200 {"error": ...}; see
// response.go for the rationale.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
	"github.com/dkarlsen/go-gift-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ListService defines list lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ListService interface {
	// Create makes a new list guarded by an access code.
	Create(ctx context.Context, title, code string) (*domain.List, error)
	// Open authenticates against an existing list and rotates its token.
	Open(ctx context.Context, title, code string) (*domain.List, error)
	// Find returns the authenticated view (title + roster) of a list.
	Find(ctx context.Context, listID, token string) (*services.ListView, error)
	// ReplaceRoster wipes and reinserts the list's roster.
	ReplaceRoster(ctx context.Context, title, token string, names []string) error
	// SetRecipients stores advisory recipient assignments per member.
	SetRecipients(ctx context.Context, listID, token string, updates []services.RecipientUpdate) error
}

// MemberService defines participant authentication and page operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MemberService interface {
	// SetCode sets (or resets) a member's access code and issues a session.
	SetCode(ctx context.Context, listID, name, code string) (*services.Session, error)
	// Access logs a member in with their access code.
	Access(ctx context.Context, listID, name, code string) (*services.Session, error)
	// Whoami resolves a member session token without list scoping.
	Whoami(ctx context.Context, token string) (*domain.Participant, error)
	// Page builds the visibility-filtered page of a member.
	Page(ctx context.Context, listID, userToken, targetName string) (*services.PageView, error)
}

// GiftService defines wishlist mutations consumed by HTTP handlers.
type GiftService interface {
	// Create adds a gift to the caller's own wishlist.
	Create(ctx context.Context, listID, token, description, link string) (*domain.Gift, error)
	// Update rewrites one of the caller's own gifts.
	Update(ctx context.Context, listID, token, giftID, description, link string) error
	// Delete removes one of the caller's own gifts.
	Delete(ctx context.Context, listID, token, giftID string) error
	// Buy toggles the bought flag on any gift and returns the buyer name used.
	Buy(ctx context.Context, listID, token, giftID string, bought bool) (string, error)
}

// NoteService defines note mutations consumed by HTTP handlers.
type NoteService interface {
	// Create writes a note about a member, attributed to the caller.
	Create(ctx context.Context, listID, token, targetName, description string) (*domain.Note, error)
	// Delete removes a note on exact id/author/subject match.
	Delete(ctx context.Context, listID, token, targetName, noteID string) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for lists, members, gifts, and notes.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic, plus the cookie attributes from config.
type Handlers struct {
	listSvc   ListService
	memberSvc MemberService
	giftSvc   GiftService
	noteSvc   NoteService
	cookies   CookieOptions
}

// New constructs a Handlers instance bound to the given services.
func New(listSvc ListService, memberSvc MemberService, giftSvc GiftService, noteSvc NoteService, cookies CookieOptions) *Handlers {
	return &Handlers{
		listSvc:   listSvc,
		memberSvc: memberSvc,
		giftSvc:   giftSvc,
		noteSvc:   noteSvc,
		cookies:   cookies,
	}
}

//
// DTOs
//

// GroupCredentials is the JSON payload for creating or opening a list.
type GroupCredentials struct {
	// Title is the list's display name (4-30 chars, no special characters).
	Title string `json:"title" example:"Smith Family Christmas"`
	// Code is the shared access code (4-20 chars, no whitespace).
	Code string `json:"code" example:"tinsel24"`
}

// FindListRequest selects the list to view.
type FindListRequest struct {
	ListID string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// RosterEntry names one member in a roster replacement.
type RosterEntry struct {
	Name string `json:"name" example:"alice"`
}

// ReplaceRosterRequest is the JSON payload for the destructive roster
// replacement. The list is addressed by title; the session token comes from
// the list cookie.
type ReplaceRosterRequest struct {
	Title string        `json:"title" example:"Smith Family Christmas"`
	Users []RosterEntry `json:"users"`
}

// RecipientEntry assigns the people one member buys for.
type RecipientEntry struct {
	Name       string   `json:"name" example:"alice"`
	Recipients []string `json:"recipients" example:"bob,carol"`
}

// SetRecipientsRequest is the JSON payload for recipient assignments.
type SetRecipientsRequest struct {
	ID    string           `json:"_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Users []RecipientEntry `json:"users"`
}

//
// Handlers
//

// CreateList godoc
// @ID          createList
// @Summary     Create a gift list
// @Description Creates a new list guarded by an access code and starts a list session.
// @Tags        Lists
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GroupCredentials  true  "List title and access code"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + listId; sets list cookie"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /home/new [post]
func (h *Handlers) CreateList(c *gin.Context) {
	var req GroupCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgListCreateFailed, err)
		return
	}

	l, err := h.listSvc.Create(c.Request.Context(), req.Title, req.Code)
	if err != nil {
		if err == services.ErrTitleTaken {
			failMsg(c, msgListTitleTaken, nil)
			return
		}
		failMsg(c, msgListCreateFailed, err)
		return
	}

	if l.ListToken != nil {
		setSessionCookie(c, listCookie, *l.ListToken, h.cookies)
	}
	okMsg(c, gin.H{"listId": l.ID})
}

// OpenList godoc
// @ID          openList
// @Summary     Open an existing gift list
// @Description Verifies the shared access code, rotates the list session token, and sets the list cookie.
// @Tags        Lists
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GroupCredentials  true  "List title and access code"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + listId; sets list cookie"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /home/open [post]
func (h *Handlers) OpenList(c *gin.Context) {
	var req GroupCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgListOpenFailed, err)
		return
	}

	l, err := h.listSvc.Open(c.Request.Context(), req.Title, req.Code)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			// Unknown title and wrong code produce the same string on purpose.
			failMsg(c, msgListOpenDenied, nil)
			return
		}
		failMsg(c, msgListOpenFailed, err)
		return
	}

	if l.ListToken != nil {
		setSessionCookie(c, listCookie, *l.ListToken, h.cookies)
	}
	okMsg(c, gin.H{"listId": l.ID})
}

// FindList godoc
// @ID          findList
// @Summary     Fetch the authenticated list view
// @Description Returns the list title and roster for the holder of a valid list session.
// @Tags        Lists
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.FindListRequest  true  "List ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + data"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /list/find [post]
func (h *Handlers) FindList(c *gin.Context) {
	token := cookieValue(c, listCookie)
	if token == "" {
		failMsg(c, msgNotLoggedIn, nil)
		return
	}

	var req FindListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgVerifyFailed, err)
		return
	}

	view, err := h.listSvc.Find(c.Request.Context(), req.ListID, token)
	if err != nil {
		if err == services.ErrListNotFound {
			failMsg(c, msgVerifyFailed, nil)
			return
		}
		failMsg(c, msgListOpenFailed, err)
		return
	}

	okMsg(c, gin.H{"data": view})
}

// ReplaceRoster godoc
// @ID          replaceRoster
// @Summary     Replace the list roster
// @Description Deletes every member of the list and reinserts the submitted names (lowercased). Destructive by design.
// @Tags        Lists
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ReplaceRosterRequest  true  "List title and full roster"
//
// @Success     200  {object}  handlers.MessageResponse
// @Success     200  {object}  handlers.ErrorResponse  "business failure envelope"
// @Router      /list/create [post]
func (h *Handlers) ReplaceRoster(c *gin.Context) {
	token := cookieValue(c, listCookie)

	var req ReplaceRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgRosterUpdateFailed, err)
		return
	}

	names := make([]string, 0, len(req.Users))
	for _, u := range req.Users {
		names = append(names, u.Name)
	}

	if err := h.listSvc.ReplaceRoster(c.Request.Context(), req.Title, token, names); err != nil {
		failMsg(c, msgRosterUpdateFailed, err)
		return
	}
	okMsg(c, nil)
}

// SetRecipients godoc
// @ID          setRecipients
// @Summary     Assign recipients per member
// @Description Stores, for each submitted member, the advisory list of people they buy for.
// @Tags        Lists
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SetRecipientsRequest  true  "List ID and per-member recipients"
//
// @Success     200  {object}  handlers.MessageResponse
// @Success     200  {object}  handlers.ErrorResponse  "business failure envelope"
// @Router      /list/recipients [post]
func (h *Handlers) SetRecipients(c *gin.Context) {
	token := cookieValue(c, listCookie)
	if token == "" {
		failMsg(c, msgNotLoggedIn, nil)
		return
	}

	var req SetRecipientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgListOpenFailed, err)
		return
	}

	updates := make([]services.RecipientUpdate, 0, len(req.Users))
	for _, u := range req.Users {
		updates = append(updates, services.RecipientUpdate{Name: u.Name, Recipients: u.Recipients})
	}

	if err := h.listSvc.SetRecipients(c.Request.Context(), req.ID, token, updates); err != nil {
		if err == services.ErrListNotFound {
			failMsg(c, msgVerifyFailed, nil)
			return
		}
		failMsg(c, msgListOpenFailed, err)
		return
	}
	okMsg(c, nil)
}
