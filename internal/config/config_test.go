package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
	require.Equal(t, 4, cfg.TabStop)
	require.Equal(t, 3, cfg.QuitTimes)
	require.Equal(t, 5*time.Second, cfg.StatusTimeout)
	require.Empty(t, cfg.Log.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"tab stop zero", func(c *Config) { c.TabStop = 0 }, "tab_stop"},
		{"tab stop too big", func(c *Config) { c.TabStop = 17 }, "tab_stop"},
		{"negative quit times", func(c *Config) { c.QuitTimes = -1 }, "quit_times"},
		{"zero status timeout", func(c *Config) { c.StatusTimeout = 0 }, "status_timeout"},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"bad colour", func(c *Config) { c.Theme.Comment = "#zzzzzz" }, "theme.comment"},
		{"empty extension", func(c *Config) { c.Syntax.Extensions = map[string]string{"": "go"} }, "syntax.extensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AllowsEmptyColoursAndZeroQuitTimes(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = ThemeConfig{}
	cfg.QuitTimes = 0
	require.NoError(t, Validate(cfg))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#268bd2")
	require.NoError(t, err)
	r, g, b := c.RGB255()
	require.Equal(t, []uint8{38, 139, 210}, []uint8{r, g, b})

	c, err = ParseColor("fff")
	require.NoError(t, err)
	r, g, b = c.RGB255()
	require.Equal(t, []uint8{255, 255, 255}, []uint8{r, g, b})

	_, err = ParseColor("blue")
	require.Error(t, err)
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", "voider"), Dir())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	require.Equal(t, filepath.Join("/home/someone", ".config", "voider"), Dir())
}
