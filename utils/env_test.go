package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	_, err := DatabaseURL()
	assert.ErrorContains(t, err, EnvDatabaseURL)

	t.Setenv(EnvDatabaseURL, "postgres://localhost/app")
	url, err := DatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/app", url)
}

func TestGetenv(t *testing.T) {
	t.Setenv(EnvAnnotations, "")
	assert.Equal(t, "off", Getenv(EnvAnnotations, "off"))

	t.Setenv(EnvAnnotations, "on")
	assert.Equal(t, "on", Getenv(EnvAnnotations, "off"))
}
