package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-system/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "admin@sistema.com", cfg.Seed.AdminEmail)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Error(t, cfg.Validate(), "sin JWT_SECRET no se pueden firmar tokens")
	cfg.JWT.Secret = "s3cret"
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", "9090")
	v.Set("JWT_EXPIRATION_MINUTES", 15)
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("DB_PASSWORD", "p@ss/word")

	cfg := config.FromViper(v)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%2Fword")

	assert.Error(t, cfg.Validate(), "JWT_SECRET es obligatorio")
	cfg.JWT.Secret = "s3cret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_StorageDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	v.Set("JWT_SECRET", "s3cret")
	cfg := config.FromViper(v)
	assert.Error(t, cfg.Validate())
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://x@y/z", Host: "h"}
	assert.Equal(t, "postgres://x@y/z", cfg.ConnectionString())
}
