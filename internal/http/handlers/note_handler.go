// Note HTTP handlers.
//
// This file exposes the note mutation endpoints:
//   - POST /user/note/create   (write a note about another member)
//   - POST /user/note/delete   (remove one of the caller's own notes)
//
// Notes are the coordination channel ("size M", "already has this book"), so
// they attach to the subject member and record the author's name. Deletion
// requires an exact id/author/subject match; anything else touches nothing
// and still succeeds.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/services"
)

//
// DTOs
//

// NewNoteRequest is the JSON payload for writing a note about a member.
type NewNoteRequest struct {
	Description string `json:"description" example:"Wears size M"`
	ListID      string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Username names the note's subject.
	Username string `json:"username" example:"bob"`
}

// DeleteNoteRequest is the JSON payload for deleting a note.
type DeleteNoteRequest struct {
	ListID   string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Username string `json:"username" example:"bob"`
	NoteID   string `json:"noteId" example:"4f0e0d30-6f0f-49d4-8f3a-52a7c2f3d111"`
}

//
// Handlers
//

// noteFail maps service errors to the note endpoints' message contract.
func noteFail(c *gin.Context, err error) {
	switch err {
	case services.ErrTargetNotFound:
		failMsg(c, msgViewedUserNotFound, nil)
	case services.ErrWriterNotFound:
		failMsg(c, msgWritingUserNotFound, nil)
	default:
		failMsg(c, msgNoteSaveFailed, err)
	}
}

// CreateNote godoc
// @ID          createNote
// @Summary     Write a note about a member
// @Description Attaches a note to the named member, attributed to the calling member's display name.
// @Tags        Notes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.NewNoteRequest  true  "Note text, list ID, and subject name"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + newNote{id,description,written_by}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/note/create [post]
func (h *Handlers) CreateNote(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req NewNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgNoteSaveFailed, err)
		return
	}

	n, err := h.noteSvc.Create(c.Request.Context(), req.ListID, token, req.Username, req.Description)
	if err != nil {
		noteFail(c, err)
		return
	}
	okMsg(c, gin.H{"newNote": n})
}

// DeleteNote godoc
// @ID          deleteNote
// @Summary     Delete a note
// @Description Removes a note the caller wrote about the named member. A mismatched id, author, or subject deletes nothing and still succeeds.
// @Tags        Notes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.DeleteNoteRequest  true  "List ID, subject name, and note ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + deletedNote{id}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/note/delete [post]
func (h *Handlers) DeleteNote(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgNoteSaveFailed, err)
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), req.ListID, token, req.Username, req.NoteID); err != nil {
		noteFail(c, err)
		return
	}
	okMsg(c, gin.H{"deletedNote": gin.H{"id": req.NoteID}})
}
