package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "inventory.db", cfg.Store.SQLitePath)
	assert.Equal(t, "orphan", cfg.Store.DeletePolicy)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 800, cfg.Chart.Width)
}

func TestFromViper_ValoresExplicitos(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Postgres")
	v.Set("DELETE_POLICY", "cascade")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_PASSWORD", "p@ss:word")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "cascade", cfg.Store.DeletePolicy)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%3Aword", "la contraseña debe ir codificada")
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	for _, tc := range []struct{ key, value string }{
		{"STORE_DRIVER", "mongo"},
		{"DELETE_POLICY", "nullify"},
		{"CHART_WIDTH", "-1"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.value)
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
