// Gift HTTP handlers.
//
// This file exposes the wishlist mutation endpoints:
//   - POST /user/gift/new      (add a gift to the caller's own list)
//   - POST /user/gift/edit     (rewrite one of the caller's own gifts)
//   - POST /user/gift/delete   (remove one of the caller's own gifts)
//   - POST /user/gift/buy      (toggle bought state on anyone's gift)
//
// The acting member is always re-derived from the user cookie; client-supplied
// IDs only select the target row. Edits and deletes that match nothing (wrong
// owner, unknown ID) still report success, mirroring the established contract.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/services"
)

//
// DTOs
//

// NewGiftRequest is the JSON payload for adding a gift. The field names are
// part of the wire contract.
type NewGiftRequest struct {
	NewGift string `json:"newGift" example:"Wool socks"`
	NewLink string `json:"newLink" example:"https://example.com/socks"`
	ListID  string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// EditGiftRequest is the JSON payload for rewriting a gift.
type EditGiftRequest struct {
	GiftID      string `json:"giftId" example:"9be02a6e-7a3e-41f2-b5ff-1c4f6a1b9d70"`
	Description string `json:"description" example:"Thick wool socks"`
	Link        string `json:"link" example:"https://example.com/socks"`
	ListID      string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// DeleteGiftRequest is the JSON payload for removing a gift.
type DeleteGiftRequest struct {
	GiftID string `json:"giftId" example:"9be02a6e-7a3e-41f2-b5ff-1c4f6a1b9d70"`
	ListID string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// BuyGiftRequest is the JSON payload for toggling a gift's bought state.
type BuyGiftRequest struct {
	GiftID string `json:"giftId" example:"9be02a6e-7a3e-41f2-b5ff-1c4f6a1b9d70"`
	Bought bool   `json:"bought" example:"true"`
	ListID string `json:"listId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// GiftPayload echoes a gift without purchase state (the owner is usually the
// one receiving these responses).
type GiftPayload struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

//
// Handlers
//

// giftFail maps service errors to the gift endpoints' message contract.
func giftFail(c *gin.Context, err error) {
	if err == services.ErrParticipantNotFound {
		failMsg(c, msgViewedUserNotFound, nil)
		return
	}
	failMsg(c, msgGiftSaveFailed, err)
}

// NewGift godoc
// @ID          newGift
// @Summary     Add a gift
// @Description Adds a gift to the calling member's own wishlist.
// @Tags        Gifts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.NewGiftRequest  true  "Gift description, link, and list ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + newGift{id,description,link}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/gift/new [post]
func (h *Handlers) NewGift(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req NewGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgGiftSaveFailed, err)
		return
	}

	g, err := h.giftSvc.Create(c.Request.Context(), req.ListID, token, req.NewGift, req.NewLink)
	if err != nil {
		giftFail(c, err)
		return
	}
	okMsg(c, gin.H{"newGift": GiftPayload{ID: g.ID, Description: g.Description, Link: g.Link}})
}

// EditGift godoc
// @ID          editGift
// @Summary     Edit a gift
// @Description Rewrites one of the calling member's own gifts. Unknown or foreign gift IDs match nothing and still succeed.
// @Tags        Gifts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.EditGiftRequest  true  "Gift ID, new description/link, and list ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + editedGift{id,description,link}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/gift/edit [post]
func (h *Handlers) EditGift(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req EditGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgGiftSaveFailed, err)
		return
	}

	if err := h.giftSvc.Update(c.Request.Context(), req.ListID, token, req.GiftID, req.Description, req.Link); err != nil {
		giftFail(c, err)
		return
	}
	okMsg(c, gin.H{"editedGift": GiftPayload{ID: req.GiftID, Description: req.Description, Link: req.Link}})
}

// DeleteGift godoc
// @ID          deleteGift
// @Summary     Delete a gift
// @Description Removes one of the calling member's own gifts, with the same zero-match tolerance as edit.
// @Tags        Gifts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.DeleteGiftRequest  true  "Gift ID and list ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + deletedGift{id}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/gift/delete [post]
func (h *Handlers) DeleteGift(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req DeleteGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgGiftSaveFailed, err)
		return
	}

	if err := h.giftSvc.Delete(c.Request.Context(), req.ListID, token, req.GiftID); err != nil {
		giftFail(c, err)
		return
	}
	okMsg(c, gin.H{"deletedGift": gin.H{"id": req.GiftID}})
}

// BuyGift godoc
// @ID          buyGift
// @Summary     Toggle a gift's bought state
// @Description Marks any gift in the list as bought (stamping the caller's name as buyer) or un-bought (clearing it).
// @Tags        Gifts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.BuyGiftRequest  true  "Gift ID, bought flag, and list ID"
//
// @Success     200  {object}  handlers.MessageResponse  "message success + boughtGift{id,bought,name}"
// @Success     200  {object}  handlers.ErrorResponse    "business failure envelope"
// @Router      /user/gift/buy [post]
func (h *Handlers) BuyGift(c *gin.Context) {
	token := cookieValue(c, userCookie)

	var req BuyGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMsg(c, msgGiftSaveFailed, err)
		return
	}

	buyer, err := h.giftSvc.Buy(c.Request.Context(), req.ListID, token, req.GiftID, req.Bought)
	if err != nil {
		giftFail(c, err)
		return
	}
	okMsg(c, gin.H{"boughtGift": gin.H{
		"id":     req.GiftID,
		"bought": req.Bought,
		"name":   buyer,
	}})
}
