package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "catalog-api", cfg.App.Name)
	assert.Equal(t, SourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL())
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "REMOTE")
	t.Setenv("CATALOG_API_URL", "https://api.mallofcayman.test")
	t.Setenv("CATALOG_API_TIMEOUT_SECONDS", "3")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceRemote, cfg.Catalog.Source)
	assert.Equal(t, "https://api.mallofcayman.test", cfg.Catalog.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, CacheRedis, cfg.Cache.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_RemoteSinURL(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "remote")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_DriverInvalido(t *testing.T) {
	cfg := &Config{
		Catalog: CatalogConfig{Source: SourcePostgres},
		Cache:   CacheConfig{Driver: "memcached"},
	}
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "mk", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/mk?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
