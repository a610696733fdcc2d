package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// TestimonialHandler serves customer testimonials.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// GetActive handles GET /api/testimonials.
//
// @Summary      List active testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      500  {object}  ErrorResponse
// @Router       /testimonials [get]
func (h *TestimonialHandler) GetActive(c echo.Context) error {
	items, err := h.service.GetActiveTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetAll handles GET /api/admin/testimonials.
//
// @Summary      List all testimonials
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/testimonials [get]
func (h *TestimonialHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAllTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/admin/testimonials.
//
// @Summary      Create a testimonial
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createTestimonialRequest  true  "Testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req createTestimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreateTestimonial(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/admin/testimonials/:id. Only supplied fields change.
//
// @Summary      Update a testimonial
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Testimonial ID"
// @Param        body  body      updateTestimonialRequest  true  "Fields to change"
// @Success      200   {object}  domain.Testimonial
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req updateTestimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.UpdateTestimonial(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/testimonials/:id.
//
// @Summary      Delete a testimonial
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	ok, err := h.service.DeleteTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Testimonial not found"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Testimonial deleted"})
}
