package api

import (
	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/api/handler"
)

// Handlers groups the request handlers bound by RegisterRoutes.
type Handlers struct {
	Content      *handler.ContentHandler
	Services     *handler.ServiceHandler
	Pricing      *handler.PricingHandler
	Testimonials *handler.TestimonialHandler
	Contacts     *handler.ContactHandler
	Auth         *handler.AuthHandler
	Health       *handler.HealthHandler
}

// RouteOptions carries the middleware that depends on configuration.
type RouteOptions struct {
	// AdminGuard wraps /api/admin/* and PUT /api/content/:key. Empty means
	// the admin routes are open.
	AdminGuard []echo.MiddlewareFunc
	// ContactLimiter throttles POST /api/contact when set.
	ContactLimiter echo.MiddlewareFunc
}

// RegisterRoutes binds the route table onto e.
func RegisterRoutes(e *echo.Echo, h Handlers, opts RouteOptions) {
	// --- Health probes (no auth required) ---
	e.GET("/health", h.Health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", h.Health.Readiness) // readiness – are dependencies up?

	api := e.Group("/api")

	// --- Public site ---
	api.GET("/content", h.Content.GetAll)
	api.PUT("/content/:key", h.Content.Update, opts.AdminGuard...)
	api.GET("/services", h.Services.GetActive)
	api.GET("/pricing", h.Pricing.GetActive)
	api.GET("/testimonials", h.Testimonials.GetActive)

	var contactMW []echo.MiddlewareFunc
	if opts.ContactLimiter != nil {
		contactMW = append(contactMW, opts.ContactLimiter)
	}
	api.POST("/contact", h.Contacts.Create, contactMW...)

	api.POST("/auth/login", h.Auth.Login)

	// --- Admin ---
	admin := api.Group("/admin", opts.AdminGuard...)

	admin.GET("/services", h.Services.GetAll)
	admin.POST("/services", h.Services.Create)
	admin.PUT("/services/:id", h.Services.Update)
	admin.DELETE("/services/:id", h.Services.Delete)

	admin.GET("/pricing", h.Pricing.GetAll)
	admin.POST("/pricing", h.Pricing.Create)
	admin.PUT("/pricing/:id", h.Pricing.Update)
	admin.DELETE("/pricing/:id", h.Pricing.Delete)

	admin.GET("/testimonials", h.Testimonials.GetAll)
	admin.POST("/testimonials", h.Testimonials.Create)
	admin.PUT("/testimonials/:id", h.Testimonials.Update)
	admin.DELETE("/testimonials/:id", h.Testimonials.Delete)

	admin.GET("/contacts", h.Contacts.GetAll)
	admin.PUT("/contacts/:id/status", h.Contacts.UpdateStatus)

	admin.POST("/users", h.Auth.Register)
}
