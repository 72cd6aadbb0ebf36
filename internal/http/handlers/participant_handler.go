// Member HTTP handlers.
//
// This file exposes the member credential and page endpoints:
//   - POST /user/create   (set or reset a member's access code)
//   - POST /user/access   (log in with an access code)
//   - POST /user/find     (whoami via the member cookie)
//   - POST /user/data     (visibility-filtered member page)
//   - POST /logout        (clear both session cookies)
//
// The member page is where the product's one hard rule is enforced: a member
// viewing their own page never sees bought/buyer state or notes. That logic
// lives in the service; these handlers only shape the two response variants.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/services"
)

//
// DTOs
//

// MemberCredentials is the JSON payload for setting a code or logging in.
type MemberCredentials struct {
	ListID string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Name is the member's roster name (stored lowercased).
	Name string `json:"name" example:"alice"`
	// Code is the member's personal access code (4-20 chars, no whitespace).
	Code string `json:"code" example:"mistletoe"`
}

// MemberIdentity echoes the authenticated member back to the client.
type MemberIdentity struct {
	Name string `json:"name" example:"alice"`
	ID   string `json:"id" example:"6f1c2a9e-0b7d-4f7a-9e69-2f1a39c07d55"`
}

// PageRequest selects whose page to view within a list.
type PageRequest struct {
	ListID   string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Username string `json:"username" example:"bob"`
}

// OwnProfile is the self-view payload: purchase state withheld.
type OwnProfile struct {
	Name  string             `json:"name"`
	Gifts []services.OwnGift `json:"gifts"`
}

//
// Handlers
//

// CreateCode godoc
// @ID          createMemberCode
// @Summary     Set a member access code
// @Description Hashes and stores an access code for a roster member, overwriting any previous one, and starts a member session.
// @Tags        Members
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.MemberCredentials  true  "List ID, member name, and new code"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + data{name,id}; sets user cookie"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/create [post]
func (h *Handlers) CreateCode(c *gin.Context) {
	var req MemberCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgCodeCreateFailed, err)
		return
	}

	sess, err := h.memberSvc.SetCode(c.Request.Context(), req.ListID, req.Name, req.Code)
	if err != nil {
		// Unknown member and store failure share the contractual string.
		failMsg(c, msgCodeCreateFailed, err)
		return
	}

	setSessionCookie(c, userCookie, sess.Token, h.cookies)
	okMsg(c, gin.H{"data": MemberIdentity{Name: sess.Name, ID: sess.ID}})
}

// AccessMember godoc
// @ID          accessMember
// @Summary     Log in as a member
// @Description Verifies a member's access code, rotates their session token, and sets the user cookie.
// @Tags        Members
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.MemberCredentials  true  "List ID, member name, and code"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + data{name,id}; sets user cookie"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/access [post]
func (h *Handlers) AccessMember(c *gin.Context) {
	var req MemberCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgLoginFailed, err)
		return
	}

	sess, err := h.memberSvc.Access(c.Request.Context(), req.ListID, req.Name, req.Code)
	if err != nil {
		switch err {
		case services.ErrParticipantNotFound:
			failMsg(c, msgVerifyFailed, nil)
		case services.ErrNoCodeSet:
			failMsg(c, msgNoCodeYet, nil)
		case services.ErrInvalidCredentials:
			failMsg(c, msgLoginFailed, nil)
		default:
			failMsg(c, msgLoginFailed, err)
		}
		return
	}

	setSessionCookie(c, userCookie, sess.Token, h.cookies)
	okMsg(c, gin.H{"data": MemberIdentity{Name: sess.Name, ID: sess.ID}})
}

// Whoami godoc
// @ID          whoami
// @Summary     Resolve the current member session
// @Description Returns the member identity for the user cookie, if any. Absence of the cookie is not an error.
// @Tags        Members
// @Produce     json
//
// @Success     200  {object}  handlers.MessageResponse  "message success + data{name,id}, or message 'No token.'"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/find [post]
func (h *Handlers) Whoami(c *gin.Context) {
	token := cookieValue(c, userCookie)
	if token == "" {
		// A missing cookie is the expected first-visit state, reported in the
		// message field rather than the error field.
		c.JSON(http.StatusOK, MessageResponse{Message: msgNoToken})
		return
	}

	p, err := h.memberSvc.Whoami(c.Request.Context(), token)
	if err != nil {
		if err == services.ErrParticipantNotFound {
			failMsg(c, msgVerifyFailed, nil)
			return
		}
		failMsg(c, msgGeneric, err)
		return
	}

	okMsg(c, gin.H{"data": MemberIdentity{Name: p.Name, ID: p.ID}})
}

// MemberPage godoc
// @ID          memberPage
// @Summary     View a member's page
// @Description Returns a member's gifts (and notes) as seen by the caller. Self-views withhold bought state, buyer names, and notes.
// @Tags        Members
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.PageRequest  true  "List ID and viewed member name"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + data{editUser|viewUser,currentUser}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/data [post]
func (h *Handlers) MemberPage(c *gin.Context) {
	listToken := cookieValue(c, listCookie)
	userToken := cookieValue(c, userCookie)
	if listToken == "" || userToken == "" {
		failMsg(c, msgPleaseLogIn, nil)
		return
	}

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgGeneric, err)
		return
	}

	view, err := h.memberSvc.Page(c.Request.Context(), req.ListID, userToken, req.Username)
	if err != nil {
		switch err {
		case services.ErrViewerNotFound:
			failMsg(c, msgCurrentUserNotFound, nil)
		case services.ErrTargetNotFound:
			failMsg(c, msgViewedUserNotFound, nil)
		default:
			failMsg(c, msgGeneric, err)
		}
		return
	}

	if view.Self {
		okMsg(c, gin.H{"data": gin.H{
			"editUser":    OwnProfile{Name: view.Name, Gifts: view.OwnGifts},
			"currentUser": view.CurrentUser,
		}})
		return
	}
	okMsg(c, gin.H{"data": gin.H{
		"viewUser": gin.H{
			"name":  view.Name,
			"gifts": view.Gifts,
			"notes": view.Notes,
		},
		"currentUser": view.CurrentUser,
	}})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Clears both session cookies. Server-side tokens remain valid until their next rotation.
// @Tags        Members
// @Produce     json
//
// @Success     200  {object}  handlers.MessageResponse
// @Router      /logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	clearSessionCookie(c, listCookie, h.cookies)
	clearSessionCookie(c, userCookie, h.cookies)
	okMsg(c, nil)
}
