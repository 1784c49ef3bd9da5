package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}

func TestNamed_AgregaComponente(t *testing.T) {
	var buf bytes.Buffer
	l := NewFrom(zerolog.New(&buf)).Named("backup")
	l.Info().Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "backup", entry["component"])
	assert.Equal(t, "hola", entry["message"])
}

func TestNew_ConArchivo(t *testing.T) {
	file := filepath.Join(t.TempDir(), "api.log")
	l := New(Config{Env: "production", Level: "info", File: file})
	require.NotNil(t, l)
	l.Info().Msg("arranque")
	assert.FileExists(t, file)
}
