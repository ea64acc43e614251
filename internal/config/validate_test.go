package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := Defaults()
		cfg.Server.Port = port

		issues := Validate(&cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, "server.port", issues[0].Path)
	}
}

func TestValidate_BadBind(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Bind = "tailnet"

	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "server.bind", issues[0].Path)
}

func TestValidate_CustomBindNeedsHost(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Bind = "custom"

	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "server.customBindHost", issues[0].Path)

	cfg.Server.CustomBindHost = "10.0.0.5"
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "loud"

	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "logging.level", issues[0].Path)
}

func TestValidate_BadConsoleStyle(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.ConsoleStyle = "compact"

	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "logging.consoleStyle", issues[0].Path)
}

func TestValidate_BadCTAURL(t *testing.T) {
	cfg := Defaults()
	cfg.Brand.CTAURL = "beofficial.example.com/start"

	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "brand.ctaUrl", issues[0].Path)
}

func TestValidate_MultipleIssues(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"

	issues := Validate(&cfg)
	assert.Len(t, issues, 2)
	assert.Contains(t, issues[0].String(), "server.port")
}
