package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndGet(t *testing.T) {
	t.Setenv("ORACULO_TEST_PORT", "8080")

	Add("sample", func() map[string]interface{} {
		return map[string]interface{}{
			"port":    Env("ORACULO_TEST_PORT", "3000"),
			"name":    Env("ORACULO_TEST_NAME", "Oraculo"),
			"retries": Env("ORACULO_TEST_RETRIES", 3),
		}
	})
	loadConfig()

	assert.Equal(t, "8080", Get("sample.port"))
	assert.Equal(t, 8080, GetInt("sample.port"))
	assert.Equal(t, "Oraculo", GetString("sample.name"))
	assert.Equal(t, 3, GetInt("sample.retries"))
	assert.Equal(t, "fallback", GetString("sample.missing", "fallback"))
}

func TestSetOverrides(t *testing.T) {
	Set("override.enabled", true)
	assert.True(t, GetBool("override.enabled"))

	Set("override.enabled", "")
	assert.True(t, GetBool("override.enabled", true))
	assert.False(t, GetBool("override.enabled"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, isEmpty(nil))
	assert.True(t, isEmpty(""))
	assert.True(t, isEmpty(0))
	assert.True(t, isEmpty(false))
	assert.True(t, isEmpty(map[string]interface{}{}))
	assert.False(t, isEmpty("x"))
	assert.False(t, isEmpty(1))
	assert.False(t, isEmpty([]string{"a"}))
}
