package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/venkatbala210/hotel-management-system/internal/handler/api"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	flowHandler *api.BookingFlowHandler,
	lookupHandler *api.LookupHandler,
	profileHandler *api.ProfileHandler,
	dashboardHandler *api.DashboardHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, roomHandler, flowHandler, lookupHandler, profileHandler, dashboardHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.AttachSession())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	flowHandler *api.BookingFlowHandler,
	lookupHandler *api.LookupHandler,
	profileHandler *api.ProfileHandler,
	dashboardHandler *api.DashboardHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/search", Handler: roomHandler.SearchRooms},
				{Method: http.MethodGet, Path: "/types", Handler: roomHandler.RoomTypes},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})
		}

		// Flow start is deliberately open: the workflow answers anonymous
		// starts with the login redirect carrying the room's return path.
		flows := apiGroup.Group("/flows")
		{
			addRoutes(flows, []route{
				{Method: http.MethodPost, Path: "", Handler: flowHandler.StartFlow},
				{Method: http.MethodGet, Path: "/:id", Handler: flowHandler.GetFlow},
				{Method: http.MethodPost, Path: "/:id/dates", Handler: flowHandler.ConfirmDates},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: flowHandler.Submit},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: flowHandler.CapturePayment},
				{Method: http.MethodDelete, Path: "/:id", Handler: flowHandler.Teardown},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: lookupHandler.FindBooking},
				{Method: http.MethodPost, Path: "/:code/payment", Handler: lookupHandler.PayOutstanding},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(middleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: profileHandler.GetProfile},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: profileHandler.CancelBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.GetDashboard},
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
