// Package app is the composition root: it wires storage, services, handlers
// and routes into a ready-to-serve Echo instance.
package app

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ndzibs/freight-site/internal/api"
	"github.com/ndzibs/freight-site/internal/api/handler"
	"github.com/ndzibs/freight-site/internal/api/middleware"
	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/internal/core/service"
	"github.com/ndzibs/freight-site/internal/infrastructure/config"
	httpserver "github.com/ndzibs/freight-site/internal/infrastructure/http"
)

// Deps are the already-connected backends the application runs on.
type Deps struct {
	Storage ports.Storage
	// Guard deduplicates contact submissions. Nil disables it.
	Guard service.SubmissionGuard
	// Cache is pinged by the readiness probe when set.
	Cache handler.Pinger
	// Registry overrides the Prometheus registry backing /metrics.
	Registry *prometheus.Registry
}

// New builds the Echo instance serving the whole API.
func New(cfg *config.Config, deps Deps, log zerolog.Logger) *echo.Echo {
	e := httpserver.NewServer(httpserver.Options{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins(),
		Registry:       deps.Registry,
	})

	st := deps.Storage
	contentService := service.NewContentService(st.Content(), log.With().Str("component", "content").Logger())
	catalogService := service.NewCatalogService(st.Services(), log.With().Str("component", "services").Logger())
	pricingService := service.NewPricingService(st.Pricing(), log.With().Str("component", "pricing").Logger())
	testimonialService := service.NewTestimonialService(st.Testimonials(), log.With().Str("component", "testimonials").Logger())
	contactService := service.NewContactService(st.Contacts(), deps.Guard, log.With().Str("component", "contacts").Logger())
	authService := service.NewAuthService(st.Users(), cfg.JWTSecret, cfg.TokenTTL)

	h := api.Handlers{
		Content:      handler.NewContentHandler(contentService),
		Services:     handler.NewServiceHandler(catalogService),
		Pricing:      handler.NewPricingHandler(pricingService),
		Testimonials: handler.NewTestimonialHandler(testimonialService),
		Contacts:     handler.NewContactHandler(contactService),
		Auth:         handler.NewAuthHandler(authService),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"storage": st,
			"redis":   deps.Cache,
		}),
	}

	var opts api.RouteOptions
	if cfg.AdminAuthEnabled {
		opts.AdminGuard = []echo.MiddlewareFunc{
			middleware.Auth(cfg.JWTSecret),
			middleware.RBAC(domain.RoleAdmin),
		}
	} else {
		log.Warn().Msg("admin routes are not protected; set ADMIN_AUTH_ENABLED=true to require a token")
	}
	if cfg.ContactRateLimit > 0 {
		opts.ContactLimiter = echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.ContactRateLimit)),
		)
	}

	api.RegisterRoutes(e, h, opts)
	return e
}
