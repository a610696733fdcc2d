package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// ServiceHandler serves the freight service catalog.
type ServiceHandler struct {
	service ports.ServiceCatalog
}

func NewServiceHandler(service ports.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{service: service}
}

// GetActive handles GET /api/services.
//
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  ErrorResponse
// @Router       /services [get]
func (h *ServiceHandler) GetActive(c echo.Context) error {
	items, err := h.service.GetActiveServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetAll handles GET /api/admin/services.
//
// @Summary      List all services
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/services [get]
func (h *ServiceHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAllServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/admin/services.
//
// @Summary      Create a service
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreateService(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/admin/services/:id. Only supplied fields change.
//
// @Summary      Update a service
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /admin/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/services/:id.
//
// @Summary      Delete a service
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	ok, err := h.service.DeleteService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Service not found"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Service deleted"})
}
