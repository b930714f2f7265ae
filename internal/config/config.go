// Package config provides configuration types and defaults for voider.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"voider/internal/log"
)

// Config holds all configuration options for voider.
type Config struct {
	TabStop       int           `mapstructure:"tab_stop"`
	QuitTimes     int           `mapstructure:"quit_times"`     // extra Ctrl-Q presses needed with unsaved changes
	StatusTimeout time.Duration `mapstructure:"status_timeout"` // how long a status message stays visible
	Log           LogConfig     `mapstructure:"log"`
	Theme         ThemeConfig   `mapstructure:"theme"`
	Syntax        SyntaxConfig  `mapstructure:"syntax"`
}

// LogConfig controls the debug log. Logging is off unless File is set.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// ThemeConfig holds hex colours ("#rrggbb") per classification. An empty
// value keeps the terminal's default colour.
type ThemeConfig struct {
	Default   string `mapstructure:"default"`
	Number    string `mapstructure:"number"`
	Match     string `mapstructure:"match"`
	String    string `mapstructure:"string"`
	Character string `mapstructure:"character"`
	Comment   string `mapstructure:"comment"`
	Keyword1  string `mapstructure:"keyword1"`
	Keyword2  string `mapstructure:"keyword2"`
	StatusBar string `mapstructure:"status_bar"` // empty draws the bar in reverse video
}

// SyntaxConfig extends the built-in language table.
type SyntaxConfig struct {
	// LanguagesFile is a YAML file with extra or replacement languages.
	LanguagesFile string `mapstructure:"languages_file"`
	// Extensions maps file extensions to language names, e.g. {"tmpl": "html"}.
	Extensions map[string]string `mapstructure:"extensions"`
}

// Defaults returns the configuration used when no file or env var overrides it.
func Defaults() Config {
	return Config{
		TabStop:       4,
		QuitTimes:     3,
		StatusTimeout: 5 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Default:   "#ffffff",
			Number:    "#b47e8d",
			Match:     "#268bd2",
			String:    "#d8a657",
			Character: "#e78a4e",
			Comment:   "#7c8f8f",
			Keyword1:  "#d3869b",
			Keyword2:  "#7daea3",
		},
		Syntax: SyntaxConfig{
			Extensions: map[string]string{},
		},
	}
}

// Dir returns the directory holding config.yaml:
// $XDG_CONFIG_HOME/voider, falling back to ~/.config/voider.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "voider")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "voider")
	}
	return filepath.Join(home, ".config", "voider")
}

// Validate checks the configuration for errors.
func Validate(c Config) error {
	if c.TabStop < 1 || c.TabStop > 16 {
		return fmt.Errorf("tab_stop must be between 1 and 16, got %d", c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.StatusTimeout <= 0 {
		return fmt.Errorf("status_timeout must be positive, got %s", c.StatusTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	for ext, lang := range c.Syntax.Extensions {
		if strings.TrimSpace(ext) == "" || strings.TrimSpace(lang) == "" {
			return fmt.Errorf("syntax.extensions: empty entry %q: %q", ext, lang)
		}
	}
	return nil
}

// ValidateTheme checks that every configured colour parses.
func ValidateTheme(t ThemeConfig) error {
	for name, value := range t.Colors() {
		if value == "" {
			continue
		}
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

// Colors returns the theme as a name -> hex map keyed like the config file.
func (t ThemeConfig) Colors() map[string]string {
	return map[string]string{
		"default":    t.Default,
		"number":     t.Number,
		"match":      t.Match,
		"string":     t.String,
		"character":  t.Character,
		"comment":    t.Comment,
		"keyword1":   t.Keyword1,
		"keyword2":   t.Keyword2,
		"status_bar": t.StatusBar,
	}
}

// ParseColor parses "#rrggbb" (or "#rgb").
func ParseColor(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c, nil
}
