package server

import (
	"context"
	"log/slog"
	"net/http"

	"aquarium-storefront/internal/handler"
	storemw "aquarium-storefront/internal/middleware"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Services struct {
	Catalog      service.CatalogService
	Cart         service.CartService
	Orders       service.OrderService
	Notification service.NotificationService
	Settings     service.SettingsService
	Members      service.MemberService
}

type Server struct {
	echo            *echo.Echo
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	settingsHandler *handler.SettingsHandler
	memberHandler   *handler.MemberHandler
}

func NewServer(services Services, cartCookie string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("request_id", v.RequestID),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("err", v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		productHandler:  handler.NewProductHandler(services.Catalog),
		cartHandler:     handler.NewCartHandler(services.Cart),
		orderHandler:    handler.NewOrderHandler(services.Orders, services.Notification),
		settingsHandler: handler.NewSettingsHandler(services.Settings),
		memberHandler:   handler.NewMemberHandler(services.Members, services.Orders),
	}

	s.setupRoutes(cartCookie, services.Members)
	return s
}

func (s *Server) setupRoutes(cartCookie string, members service.MemberService) {
	api := s.echo.Group("/api", storemw.Member(members))

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	api.GET("/settings", s.settingsHandler.GetSettings)
	api.PUT("/settings", s.settingsHandler.SaveSettings)

	// -------- cart session --------
	cartSession := storemw.CartSession(cartCookie)

	cart := api.Group("/cart", cartSession)
	cart.GET("", s.cartHandler.GetCart)
	cart.DELETE("", s.cartHandler.Clear)
	cart.GET("/total", s.cartHandler.Total)
	cart.GET("/count", s.cartHandler.Count)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PATCH("/items/:productId", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:productId", s.cartHandler.RemoveItem)

	api.POST("/orders", s.orderHandler.CreateOrder, cartSession)
	api.GET("/orders", s.orderHandler.GetOrders)
	api.GET("/orders/:id", s.orderHandler.GetOrder)
	api.GET("/notifications", s.orderHandler.GetNotifications)

	// -------- members --------
	memberRoutes := api.Group("/members")
	memberRoutes.POST("/login/:method", s.memberHandler.Login)
	memberRoutes.POST("/logout", s.memberHandler.Logout)
	memberRoutes.GET("/me", s.memberHandler.Me)
	memberRoutes.GET("/me/orders", s.memberHandler.MyOrders)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
