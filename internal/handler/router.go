package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guri24/internal/domain/user"
	"guri24/internal/handler/api"
	"guri24/internal/handler/middleware"
	"guri24/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Property *api.PropertyHandler
	Inquiry  *api.InquiryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// PUT on a read-only path answers 405 rather than 404.
	engine.HandleMethodNotAllowed = true

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/verify-email", Handler: h.Auth.VerifyEmail},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/resend-verification", Handler: h.Auth.ResendVerification},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		agents := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAgent)}
		properties := apiGroup.Group("/properties")
		properties.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Property.List},
				{Method: http.MethodGet, Path: "/id/:id", Handler: h.Property.GetByID},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Property.GetBySlug},
				{Method: http.MethodPost, Path: "/:id/view", Handler: h.Property.RecordView},
				{Method: http.MethodPost, Path: "", Handler: h.Property.Create, Mw: agents},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Property.Update, Mw: agents},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.Archive, Mw: agents},
			})
		}

		inquiries := apiGroup.Group("/inquiries")
		{
			addRoutes(inquiries, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Inquiry.Create, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})

			signedIn := inquiries.Group("")
			signedIn.Use(authMiddleware.RequireAuth())
			addRoutes(signedIn, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inquiry.ListMine},
				{Method: http.MethodGet, Path: "/received", Handler: h.Inquiry.ListReceived, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAgent)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Inquiry.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Inquiry.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAgent)}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/property/:property_id/availability", Handler: h.Booking.Availability},
			})

			guests := bookings.Group("")
			guests.Use(authMiddleware.RequireAuth(), authMiddleware.RequireActiveUser())
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/me", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
