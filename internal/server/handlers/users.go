package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/models"
)

type UserHandler struct {
	svc UserAuth
}

func NewUserHandler(svc UserAuth) *UserHandler {
	return &UserHandler{svc: svc}
}

// Get serves GET /users: the full sanitized account collection.
func (h *UserHandler) Get(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// userAction is the POST /users envelope. The action field selects the
// operation; the rest of the payload depends on it.
type userAction struct {
	Action       string      `json:"action"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Password     string      `json:"password"`
	Mobile       string      `json:"mobile"`
	Role         models.Role `json:"role"`
	RefreshToken string      `json:"refreshToken"`
}

// Post serves POST /users. Login rejections come back as HTTP 200 with
// success=false so clients can show the reason; a duplicate registration is
// a 409 carrying the same envelope shape.
func (h *UserHandler) Post(c echo.Context) error {
	ctx := c.Request().Context()

	var req userAction
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed payload"})
	}

	switch req.Action {
	case "login":
		res, err := h.svc.Login(ctx, req.Email, req.Password, req.Role)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, res)

	case "register":
		res, err := h.svc.Register(ctx, models.Registration{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Mobile:   req.Mobile,
			Role:     req.Role,
		})
		if err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return c.JSON(http.StatusConflict, models.AuthResult{
					Success: false,
					Reason:  common.DuplicateEmailReason,
				})
			}
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, res)

	case "refresh":
		res, err := h.svc.Refresh(ctx, req.RefreshToken)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, res)

	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown action"})
	}
}
