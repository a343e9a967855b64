package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("ENV_TEST_KEY", "value")
	value, ok := Get("ENV_TEST_KEY")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	t.Setenv("ENV_TEST_KEY", "")
	_, ok = Get("ENV_TEST_KEY")
	assert.False(t, ok, "empty value should count as unset")
}

func TestGetOrDefault(t *testing.T) {
	t.Setenv("ENV_TEST_KEY", "set")
	assert.Equal(t, "set", GetOrDefault("ENV_TEST_KEY", "fallback"))

	t.Setenv("ENV_TEST_KEY", "")
	assert.Equal(t, "fallback", GetOrDefault("ENV_TEST_KEY", "fallback"))
}
