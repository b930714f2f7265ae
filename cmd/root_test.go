package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"voider/internal/config"
)

func loadConfig(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if yaml != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "voider"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "voider", "config.yaml"), []byte(yaml), 0o600))
	}
	viper.Reset()
	cfg = config.Config{}
	initConfig()
	t.Cleanup(viper.Reset)
}

func TestInitConfig_Defaults(t *testing.T) {
	loadConfig(t, "")
	require.NoError(t, configErr)

	want := config.Defaults()
	require.Equal(t, want.TabStop, cfg.TabStop)
	require.Equal(t, want.QuitTimes, cfg.QuitTimes)
	require.Equal(t, want.StatusTimeout, cfg.StatusTimeout)
	require.Equal(t, want.Theme, cfg.Theme)
	require.NoError(t, config.Validate(cfg))
}

func TestInitConfig_FileAndEnv(t *testing.T) {
	t.Setenv("VOIDER_QUIT_TIMES", "5")
	loadConfig(t, `
tab_stop: 8
status_timeout: 2s
theme:
  comment: "#00ff00"
syntax:
  extensions:
    tmpl: html
`)
	require.NoError(t, configErr)
	require.Equal(t, 8, cfg.TabStop)
	require.Equal(t, 5, cfg.QuitTimes)
	require.Equal(t, 2*time.Second, cfg.StatusTimeout)
	require.Equal(t, "#00ff00", cfg.Theme.Comment)
	require.Equal(t, config.Defaults().Theme.Number, cfg.Theme.Number)
	require.Equal(t, map[string]string{"tmpl": "html"}, cfg.Syntax.Extensions)
}

func TestInitConfig_BrokenFile(t *testing.T) {
	loadConfig(t, "tab_stop: [unclosed")
	require.Error(t, configErr)
	require.ErrorContains(t, runEditor(rootCmd, nil), "reading config")
}

func TestBuildRegistry(t *testing.T) {
	langs := filepath.Join(t.TempDir(), "langs.yaml")
	require.NoError(t, os.WriteFile(langs, []byte(`
languages:
  - name: zig
    extensions: [".zig"]
    primary: [fn, const]
    line_comment: "//"
    string_delimiters: "\""
    numbers: true
`), 0o600))

	reg, err := buildRegistry(config.SyntaxConfig{
		LanguagesFile: langs,
		Extensions:    map[string]string{"tmpl": "html"},
	})
	require.NoError(t, err)
	require.Equal(t, "zig", reg.Detect("main.zig").Name)
	require.Equal(t, "html", reg.Detect("page.tmpl").Name)

	_, err = buildRegistry(config.SyntaxConfig{Extensions: map[string]string{"x": "nosuchlang"}})
	require.Error(t, err)

	_, err = buildRegistry(config.SyntaxConfig{LanguagesFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
