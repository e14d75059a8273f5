package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/models"
)

// errorResponse is the JSON failure shape clients parse: error first,
// reason for business rejections.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto the API's status codes.
func writeError(c echo.Context, err error) error {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, common.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
