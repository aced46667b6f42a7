// seed aplica las migraciones y carga los datos iniciales (administrador y productos de ejemplo)
// en PostgreSQL sin levantar el servidor HTTP.
//
// Uso: go run ./cmd/seed [--products=false] [--migrate-only]
// La conexión y las credenciales del administrador se leen igual que en cmd/api (env / .env).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jhoicas/inventario-system/internal/application/bootstrap"
	"github.com/jhoicas/inventario-system/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-system/pkg/config"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	products := flag.Bool("products", cfg.Seed.SampleProducts, "cargar productos de ejemplo si la tabla está vacía")
	migrateOnly := flag.Bool("migrate-only", false, "solo aplicar migraciones")
	flag.StringVar(&cfg.Seed.AdminEmail, "admin-email", cfg.Seed.AdminEmail, "email del administrador inicial")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
	if *migrateOnly {
		return
	}

	seeder := bootstrap.NewSeeder(postgres.NewUserRepository(pool), postgres.NewProductRepository(pool), log)
	admin := bootstrap.Admin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}
	if err := seeder.Run(ctx, admin, *products); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}
	log.Info().Msg("seed completado")
}
