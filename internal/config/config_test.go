package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("CATALOG_API_BASE_URL", "https://dummyjson.com")
	t.Setenv("GO_ENV", "dev")
}

func TestLoad_Success(t *testing.T) {
	setAll(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://dummyjson.com", cfg.CatalogAPIBaseURL)
	assert.Equal(t, "dev", cfg.GoEnv)
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []string{"PORT", "CATALOG_API_BASE_URL", "GO_ENV"}
	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			setAll(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
