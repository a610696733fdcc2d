package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// ContentHandler serves the editable site copy.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetAll handles GET /api/content.
//
// @Summary      List all content entries
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Content
// @Failure      500  {object}  ErrorResponse
// @Router       /content [get]
func (h *ContentHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAllContent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PUT /api/content/:key. Unknown keys are created.
//
// @Summary      Create or update a content entry
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        key   path      string                true  "Content key"
// @Param        body  body      updateContentRequest  true  "New value"
// @Success      200   {object}  domain.Content
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /content/{key} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if req.Value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Value is required")
	}

	item, err := h.service.UpdateContent(c.Request().Context(), c.Param("key"), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
