// @title						Inventario System API
// @version					1.0
// @description				API de inventario: autenticación, productos, notificaciones de inventario bajo y reportes PDF.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/inventario-system/docs"
	"github.com/jhoicas/inventario-system/internal/application/auth"
	"github.com/jhoicas/inventario-system/internal/application/bootstrap"
	"github.com/jhoicas/inventario-system/internal/application/report"
	"github.com/jhoicas/inventario-system/internal/application/usecase"
	"github.com/jhoicas/inventario-system/internal/domain/authz"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-system/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-system/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-system/internal/interfaces/http"
	"github.com/jhoicas/inventario-system/pkg/config"
	"github.com/jhoicas/inventario-system/pkg/jwt"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// repos adaptadores de persistencia elegidos según STORAGE_DRIVER.
type repos struct {
	users         repository.UserRepository
	products      repository.ProductRepository
	notifications repository.NotificationRepository
	tx            repository.ProductTxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	seeder := bootstrap.NewSeeder(r.users, r.products, log)
	admin := bootstrap.Admin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}
	if err := seeder.Run(ctx, admin, cfg.Seed.SampleProducts); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	jwtCfg := jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.Expiration,
	}
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
	})
	notificationUC := usecase.NewNotificationUseCase(r.notifications, r.users, log)
	productUC := usecase.NewProductUseCase(r.products, r.tx, notificationUC, log)
	reportUC := report.NewUseCase(r.products, infrapdf.NewMarotoPDFGenerator(), log)

	var extra []fiber.Handler
	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		extra = append(extra, swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario System API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Extra:       extra,
	}, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		NotificationUC: notificationUC,
		ReportUC:       reportUC,
		Authorizer:     authz.DefaultPolicy(),
		JWT:            jwtCfg,
		Logger:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (aplicando migraciones si DB_AUTO_MIGRATE) o el almacén en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repos{
			users:         memory.NewUserRepository(store),
			products:      memory.NewProductRepository(store),
			notifications: memory.NewNotificationRepository(store),
			tx:            memory.NewTxRunner(store),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return &repos{
		users:         postgres.NewUserRepository(pool),
		products:      postgres.NewProductRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		tx:            postgres.NewTxRunner(pool),
		close:         pool.Close,
	}, nil
}
