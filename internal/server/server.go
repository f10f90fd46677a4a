// Package server exposes the REST API over the product and billing services.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/inventoryhub/internal/config"
	"github.com/mmynk/inventoryhub/internal/service"
)

// Server wires the HTTP routes to the injected services.
type Server struct {
	app      *fiber.App
	products *service.ProductService
	billing  *service.BillingService
}

// New builds the fiber application with CORS, request logging and all routes
// registered. Cross-origin access is limited to the configured front-end origin.
func New(cfg config.Config, products *service.ProductService, billing *service.BillingService) *Server {
	app := fiber.New()

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	s := &Server{app: app, products: products, billing: billing}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api")

	api.Get("/products", s.listProducts)
	api.Get("/products/:id", s.getProduct)
	api.Post("/products", s.createProduct)
	api.Put("/products/:id", s.updateProduct)
	api.Delete("/products/:id", s.deleteProduct)

	api.Post("/bills", s.createBill)
	api.Get("/bills", s.listBills)
	api.Get("/bills/:id", s.getBill)
}

// Listen serves the API on the given address, blocking until shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server, giving in-flight requests up to
// timeout to finish.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// App returns the underlying fiber application, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}
