package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/auth"
	"github.com/jhoicas/inventario-system/internal/application/report"
	"github.com/jhoicas/inventario-system/internal/application/usecase"
	"github.com/jhoicas/inventario-system/internal/domain/authz"
	"github.com/jhoicas/inventario-system/pkg/jwt"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *report.UseCase
	Authorizer     authz.Authorizer
	JWT            jwt.Config
	Logger         *logger.Logger
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	az := deps.Authorizer
	if az == nil {
		az = authz.DefaultPolicy()
	}
	val := NewValidator()
	authMW := AuthMiddleware(deps.JWT)
	can := func(perm authz.Permission) fiber.Handler { return RequirePermission(az, perm) }

	api := app.Group("/api")

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, val, log.Named("http.auth"))
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/validate", authHandler.Validate)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Products: lectura para cualquier rol, escritura solo administradores.
	// Las rutas fijas van antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC, val, log.Named("http.products"))
	products := api.Group("/products", authMW)
	products.Get("/", can(authz.ProductsRead), productHandler.List)
	products.Get("/low-stock", can(authz.ProductsRead), productHandler.LowStock)
	products.Get("/categories", can(authz.ProductsRead), productHandler.Categories)
	products.Get("/:id", can(authz.ProductsRead), productHandler.GetByID)
	products.Post("/", can(authz.ProductsWrite), productHandler.Create)
	products.Put("/:id", can(authz.ProductsWrite), productHandler.Update)
	products.Delete("/:id", can(authz.ProductsWrite), productHandler.Delete)
	products.Post("/:id/report-low-stock", can(authz.ProductsReport), productHandler.ReportLowStock)

	// Notifications (administradores)
	notificationHandler := NewNotificationHandler(deps.NotificationUC, log.Named("http.notifications"))
	notifications := api.Group("/notifications", authMW, can(authz.NotificationsRead))
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread", notificationHandler.Unread)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/mark-all-read", notificationHandler.MarkAllAsRead)
	notifications.Put("/:id/mark-read", notificationHandler.MarkAsRead)

	// Reports (administradores)
	reportHandler := NewReportHandler(deps.ReportUC, log.Named("http.reports"))
	reports := api.Group("/reports", authMW, can(authz.ReportsRead))
	reports.Get("/low-stock-pdf", reportHandler.LowStockPDF)
	reports.Get("/inventory-pdf", reportHandler.InventoryPDF)
}
