package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/edevyatkin/shop-api/internal/validation"
)

const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

// ErrorResponse is the envelope for every error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func errorResponse(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{Code: code, Message: message})
}

func validationError(c echo.Context, display string) error {
	return errorResponse(c, http.StatusBadRequest, CodeValidation, validation.RequiredMessage(display))
}

func notFound(c echo.Context, message string) error {
	return errorResponse(c, http.StatusNotFound, CodeNotFound, message)
}

// persistError maps a persistence failure to the client-facing
// envelope. Unique-constraint violations surface as 409 and missing
// rows as 404; anything else is logged and collapsed to a generic 500.
func persistError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorResponse(c, http.StatusConflict, CodeConflict, "A record with the same unique field already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(c, "Record not found")
	default:
		c.Logger().Errorf("persistence error: %v", err)
		return errorResponse(c, http.StatusInternalServerError, CodeInternal, "Internal Server Error")
	}
}

func internalError(c echo.Context, err error) error {
	c.Logger().Errorf("internal error: %v", err)
	return errorResponse(c, http.StatusInternalServerError, CodeInternal, "Internal Server Error")
}
