package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// ContactHandler handles contact form intake and follow-up.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Enquiry"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreateContact(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// GetAll handles GET /api/admin/contacts.
//
// @Summary      List all contact enquiries
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Contact
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/contacts [get]
func (h *ContactHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAllContacts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateStatus handles PUT /api/admin/contacts/:id/status.
//
// @Summary      Change the status of an enquiry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Contact ID"
// @Param        body  body      updateContactStatusRequest  true  "New status"
// @Success      200   {object}  domain.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/contacts/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req updateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Status is required")
	}

	updated, err := h.service.UpdateContactStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
