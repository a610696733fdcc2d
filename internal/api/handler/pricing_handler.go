package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// PricingHandler serves the rate card.
type PricingHandler struct {
	service ports.PricingService
}

func NewPricingHandler(service ports.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

// GetActive handles GET /api/pricing.
//
// @Summary      List active pricing tiers
// @Tags         pricing
// @Produce      json
// @Success      200  {array}   domain.Pricing
// @Failure      500  {object}  ErrorResponse
// @Router       /pricing [get]
func (h *PricingHandler) GetActive(c echo.Context) error {
	items, err := h.service.GetActivePricing(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetAll handles GET /api/admin/pricing.
//
// @Summary      List all pricing tiers
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Pricing
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/pricing [get]
func (h *PricingHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAllPricing(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/admin/pricing.
//
// @Summary      Create a pricing tier
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createPricingRequest  true  "Pricing tier"
// @Success      201   {object}  domain.Pricing
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/pricing [post]
func (h *PricingHandler) Create(c echo.Context) error {
	var req createPricingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreatePricing(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/admin/pricing/:id. Only supplied fields change.
//
// @Summary      Update a pricing tier
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Pricing ID"
// @Param        body  body      updatePricingRequest  true  "Fields to change"
// @Success      200   {object}  domain.Pricing
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/pricing/{id} [put]
func (h *PricingHandler) Update(c echo.Context) error {
	var req updatePricingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.UpdatePricing(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/pricing/:id.
//
// @Summary      Delete a pricing tier
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Pricing ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/pricing/{id} [delete]
func (h *PricingHandler) Delete(c echo.Context) error {
	ok, err := h.service.DeletePricing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Pricing not found"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Pricing deleted"})
}
