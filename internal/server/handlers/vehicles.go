package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

type VehicleHandler struct {
	svc VehicleStore
}

func NewVehicleHandler(svc VehicleStore) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// Get serves GET /vehicles. With ?type=data it returns the taxonomy
// document instead of the listing collection.
func (h *VehicleHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("type") == "data" {
		data, err := h.svc.Taxonomy(ctx)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, data)
	}

	vehicles, err := h.svc.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Post serves POST /vehicles: a new listing, or a full taxonomy replace
// with ?type=data.
func (h *VehicleHandler) Post(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("type") == "data" {
		var data models.VehicleTaxonomy
		if err := c.Bind(&data); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed taxonomy payload"})
		}
		if err := h.svc.SaveTaxonomy(ctx, data); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}

	var v models.VehicleRecord
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed vehicle payload"})
	}
	created, err := h.svc.Create(ctx, &v)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Put serves PUT /vehicles with a full record; the ID names the listing to
// replace.
func (h *VehicleHandler) Put(c echo.Context) error {
	var v models.VehicleRecord
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed vehicle payload"})
	}
	if v.ID == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing vehicle id"})
	}
	updated, err := h.svc.Update(c.Request().Context(), &v)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete serves DELETE /vehicles with {"id": n} in the body.
func (h *VehicleHandler) Delete(c echo.Context) error {
	var body struct {
		ID int64 `json:"id"`
	}
	if err := c.Bind(&body); err != nil || body.ID == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing vehicle id"})
	}
	if err := h.svc.Delete(c.Request().Context(), body.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "id": body.ID})
}
