package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management-api/internal/item"
)

// bindBody decodes the JSON body as an object and maps legacy field names.
func (h *handler) bindBody(c *gin.Context) (map[string]any, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.l.Debugf(c.Request.Context(), "item.delivery.http.bindBody: %v", err)
		return nil, errInvalidJSON
	}
	return item.Normalize(raw), nil
}

// processCreateReq binds, normalizes and validates a create body.
func (h *handler) processCreateReq(c *gin.Context) (itemReq, error) {
	body, err := h.bindBody(c)
	if err != nil {
		return itemReq{}, err
	}
	if err := item.ValidateFull(body); err != nil {
		return itemReq{}, h.mapError(err)
	}
	return newItemReq(body), nil
}

// processReplaceReq is processCreateReq plus the URI id.
func (h *handler) processReplaceReq(c *gin.Context) (itemReq, error) {
	req, err := h.processCreateReq(c)
	if err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processPatchReq binds a partial body; rules apply only to the keys sent.
func (h *handler) processPatchReq(c *gin.Context) (patchReq, error) {
	body, err := h.bindBody(c)
	if err != nil {
		return patchReq{}, err
	}
	if err := item.ValidatePartial(body); err != nil {
		return patchReq{}, h.mapError(err)
	}
	return newPatchReq(c.Param("id"), body), nil
}

// processSearchReq binds the search query string.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errQueryRequired
	}
	return req, nil
}
