package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-management-api/pkg/errors"
)

// NewOKResp returns a success envelope carrying data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKWithMessage sends 200 JSON with a message and optional data.
func OKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends 201 JSON with a message and the created resource.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List sends 200 JSON with data and its element count.
func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Error sends the failure envelope. *errors.HTTPError values keep their code and
// message; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(httpErr.Code, Resp{
			Success: false,
			Message: httpErr.Message,
		})
		return
	}
	InternalError(c, err)
}

// AbortError is Error for middleware and fallback handlers that must stop the chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, _ error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Message: DefaultErrorMessage,
	})
}
