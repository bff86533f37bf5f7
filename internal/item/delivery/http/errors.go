package http

import (
	"errors"
	"net/http"

	"inventory-management-api/internal/item"
	pkgErrors "inventory-management-api/pkg/errors"
	"inventory-management-api/pkg/response"
)

var (
	errInvalidJSON      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object.")
	errItemNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Item not found")
	errQueryRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Search query is required")
	errStoreUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Item store is temporarily unavailable")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *item.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Error())
	case errors.Is(err, item.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, item.ErrEmptyQuery):
		return errQueryRequired
	case errors.Is(err, item.ErrStoreUnavailable):
		return errStoreUnavailable
	case h.exposeErrors:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
