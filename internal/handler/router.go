package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodshare/internal/handler/api"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/config"
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
	donationHandler *api.DonationHandler,
	orderHandler *api.OrderHandler,
	perishableHandler *api.PerishableHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, donationHandler, orderHandler, perishableHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	donationHandler *api.DonationHandler,
	orderHandler *api.OrderHandler,
	perishableHandler *api.PerishableHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		donations := apiGroup.Group("/donations")
		{
			addRoutes(donations, []route{
				{Method: http.MethodGet, Path: "", Handler: donationHandler.ListDonations},
				{Method: http.MethodGet, Path: "/:id", Handler: donationHandler.GetDonation},
			})

			authRequired := donations.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: donationHandler.CreateDonation},
				{Method: http.MethodGet, Path: "/mine", Handler: donationHandler.ListMyDonations},
				{Method: http.MethodGet, Path: "/reserved", Handler: donationHandler.ListReservedDonations},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: donationHandler.ReserveDonation},
				{Method: http.MethodPost, Path: "/:id/pickup", Handler: donationHandler.ConfirmPickup},
				{Method: http.MethodDelete, Path: "/:id", Handler: donationHandler.DeleteDonation},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListMyOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: orderHandler.UpdateOrderStatus},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: orderHandler.CompleteOrder},
				{Method: http.MethodDelete, Path: "/:id", Handler: orderHandler.DeleteOrder},
			})
		}

		perishables := apiGroup.Group("/perishables")
		{
			addRoutes(perishables, []route{
				{Method: http.MethodPost, Path: "", Handler: perishableHandler.CreatePerishable},
				{Method: http.MethodGet, Path: "", Handler: perishableHandler.ListPerishables},
				{Method: http.MethodGet, Path: "/:id", Handler: perishableHandler.GetPerishable},
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
