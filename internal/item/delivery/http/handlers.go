package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management-api/pkg/response"
)

const (
	msgCreated        = "Item created successfully"
	msgUpdated        = "Item updated successfully"
	msgPartialUpdated = "Item partially updated successfully"
	msgDeleted        = "Item deleted successfully"
)

// List godoc
// @Summary     List items
// @Description Returns every item, newest first.
// @Tags        Items
// @Produce     json
// @Success     200 {object} itemListEnvelope
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, newItemListResp(output.Items), len(output.Items))
}

// Search godoc
// @Summary     Search items
// @Description Case-insensitive substring match on name or category, newest first.
// @Tags        Items
// @Produce     json
// @Param       q query string true "Search text"
// @Success     200 {object} itemListEnvelope
// @Failure     400 {object} response.Resp "Search query is required"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, newItemListResp(output.Items), len(output.Items))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID. Malformed IDs are reported as not found.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Create godoc
// @Summary     Create a new item
// @Description Creates an item. "qty" is accepted as an alias of "quantity".
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body itemBody true "Item data"
// @Success     201 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, msgCreated, newItemResp(output.Item))
}

// Replace godoc
// @Summary     Replace an item
// @Description Overwrites every field of an existing item. "qty" is accepted as an alias of "quantity".
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Item ID"
// @Param       body body itemBody true "Item data"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items/{id} [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Replace(ctx, req.toReplaceInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Replace: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, msgUpdated, newItemResp(output.Item))
}

// Patch godoc
// @Summary     Partially update an item
// @Description Merges only the supplied fields; each supplied field must still be valid.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Item ID"
// @Param       body body itemBody true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items/{id} [PATCH]
func (h *handler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Patch(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Patch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, msgPartialUpdated, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "Item deleted successfully"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, msgDeleted, nil)
}
