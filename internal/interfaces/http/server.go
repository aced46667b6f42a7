package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-system/pkg/logger"
)

// ServerConfig opciones del *fiber.App.
type ServerConfig struct {
	AppName     string
	CORSOrigins string // lista separada por comas
	// Extra middlewares montados antes de las rutas (p. ej. Swagger UI).
	Extra []fiber.Handler
}

// NewApp crea la aplicación Fiber con recover, CORS, log de peticiones, /health y las rutas /api.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
		deps.Logger = log
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log.Named("http")))
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))
	}

	for _, h := range cfg.Extra {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, deps)
	return app
}
