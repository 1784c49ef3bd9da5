package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiresIn(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"12h", 12 * time.Hour},
		{"3600", time.Hour},
		{"1h30m", 90 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseExpiresIn(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseExpiresIn_Invalido(t *testing.T) {
	for _, in := range []string{"abc", "0", "-5", "xd", "0d"} {
		_, err := ParseExpiresIn(in)
		assert.Error(t, err, in)
	}
}

func TestLoad_RequiereSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("PORT", "4000")
	t.Setenv("JWT_EXPIRES_IN", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "postgres", cfg.App.Storage)
	assert.False(t, cfg.SMTP.Enabled())
}
