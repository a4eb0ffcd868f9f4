package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.Session.Store)
	assert.Equal(t, "obra_session", cfg.Session.CookieName)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.DB.Migrate)
}

func TestFromViper_SinSecretoFalla(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_StoreInvalido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("SESSION_STORE", "redis")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_BaseURLSinBarraFinal(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("API_BASE_URL", "https://api.constructora.co/v1/")
	v.Set("API_TIMEOUT_SECONDS", "3")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.constructora.co/v1", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "obra", Password: "p@ss/word", DBName: "obra_admin", SSLMode: "disable"}
	assert.Equal(t, "postgres://obra:p%40ss%2Fword@db:5432/obra_admin?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
