package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-venue-manager/internal/auth"       // auth provides the Verifier for session middleware
	"github.com/iliyamo/hotel-venue-manager/internal/config"     // config carries cache and rate-limit settings
	"github.com/iliyamo/hotel-venue-manager/internal/handler"    // handlers implement the business logic
	"github.com/iliyamo/hotel-venue-manager/internal/middleware" // middleware resolves sessions and guards routes
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance: the health check and the static asset mounts.
func RegisterRoutes(e *echo.Echo, uploadDir string) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
	// Locally mirrored uploads and the page assets are served directly.
	e.Static("/uploads", uploadDir)
	e.Static("/static", "static")
}

// RegisterAuth registers the browser-facing session endpoints.  None of them
// require an existing session: signup and login create one, logout destroys
// whatever the cookie carries.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/signup", a.Signup)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)
}

// RegisterPages registers the operator page routes.  The entry page is
// public; every other page sits behind the redirecting session middleware so
// an unauthenticated browser is sent back to the entry page rather than
// shown an error body.
func RegisterPages(e *echo.Echo, p *handler.PageHandler, v auth.Verifier) {
	e.GET("/", p.Entry)

	pages := e.Group("")
	pages.Use(middleware.RequireSessionPage(v))
	pages.GET("/dashboard", p.Dashboard)
	pages.GET("/manage", p.Manage)
	pages.GET("/edit/:type/:id", p.Edit)
}

// RegisterAPI registers the protected JSON API.  The session middleware runs
// first so the cache and rate-limit middlewares can key on the resolved
// identity; rdb may be nil, in which case both degrade to pass-throughs.
func RegisterAPI(e *echo.Echo, h *handler.APIHandler, u *handler.UploadHandler, v auth.Verifier, rdb *redis.Client) {
	api := e.Group("/api")
	api.Use(middleware.RequireSession(v))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	api.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Rooms: the only resource with a status toggle.
	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
	api.PUT("/rooms/:id", h.UpdateRoom)
	api.PUT("/rooms/:id/toggle", h.ToggleRoom)
	api.DELETE("/rooms/:id", h.DeleteRoom)

	// Photo-based menu items.
	api.GET("/menu_photo", h.ListMenuPhotos)
	api.POST("/menu_photo", h.CreateMenuPhoto)
	api.PUT("/menu_photo/:id", h.UpdateMenuPhoto)
	api.DELETE("/menu_photo/:id", h.DeleteMenuPhoto)

	// Text-based menu items.
	api.GET("/menu_list", h.ListMenuItems)
	api.POST("/menu_list", h.CreateMenuItem)
	api.PUT("/menu_list/:id", h.UpdateMenuItem)
	api.DELETE("/menu_list/:id", h.DeleteMenuItem)

	// Venue events.
	api.GET("/events", h.ListEvents)
	api.POST("/events", h.CreateEvent)
	api.PUT("/events/:id", h.UpdateEvent)
	api.DELETE("/events/:id", h.DeleteEvent)

	// The upload relay is a mutating endpoint like any other and sits
	// behind the same session check.
	e.POST("/upload-photo", u.UploadPhoto, middleware.RequireSession(v))
}
