package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("ruidoso"))
}

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Out: &buf, Name: "inventario"})

	l.Component("store").Info().Str("id", "abc").Msg("categoría creada")
	l.Debug().Msg("no debe aparecer")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "inventario", entry["app"])
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "abc", entry["id"])
	assert.Equal(t, "categoría creada", entry["message"])
	assert.False(t, l.DebugEnabled())
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() { l.Error().Msg("silencio") })
}
