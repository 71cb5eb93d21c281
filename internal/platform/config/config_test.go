package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuth(t *testing.T) {
	t.Run("missing secret is fatal", func(t *testing.T) {
		t.Setenv("SECRET", "")

		cfg, err := LoadAuth()
		assert.ErrorIs(t, err, ErrMissingSecret)
		assert.Nil(t, cfg)
	})

	t.Run("defaults apply when only the secret is set", func(t *testing.T) {
		t.Setenv("SECRET", "test-secret")
		t.Setenv("APP_NAME", "")
		t.Setenv("PORT", "")
		t.Setenv("BCRYPT_COST", "")

		cfg, err := LoadAuth()
		require.NoError(t, err)
		assert.Equal(t, "portal", cfg.AppName)
		assert.Equal(t, "8080", cfg.Port)
		assert.Zero(t, cfg.BcryptCost)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Setenv("SECRET", "test-secret")
		t.Setenv("APP_NAME", "myportal")
		t.Setenv("PORT", "9000")
		t.Setenv("BCRYPT_COST", "10")

		cfg, err := LoadAuth()
		require.NoError(t, err)
		assert.Equal(t, "myportal", cfg.AppName)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("malformed integer falls back to the default", func(t *testing.T) {
		t.Setenv("SECRET", "test-secret")
		t.Setenv("BCRYPT_COST", "not-a-number")

		cfg, err := LoadAuth()
		require.NoError(t, err)
		assert.Zero(t, cfg.BcryptCost)
	})
}

func TestLoadBlog(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := LoadBlog()
	assert.Equal(t, "8081", cfg.Port)
}
