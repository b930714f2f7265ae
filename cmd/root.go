// Package cmd wires configuration, logging and the terminal into the editor.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voider/internal/config"
	"voider/internal/document"
	"voider/internal/editor"
	"voider/internal/log"
	"voider/internal/syntax"
	"voider/internal/terminal"
)

var (
	version = "dev"
	cfg     config.Config

	// configErr holds a config file that exists but could not be read.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "voider [path]",
	Short: "A small terminal text editor",
	Long: `Voider is a small terminal text editor with syntax highlighting and
incremental search.

Keys:
  Ctrl-F, F3   Find (arrows step between matches, Esc cancels)
  Ctrl-S, F5   Save, asking for a file name if there is none
  Ctrl-Q, F8   Quit (press repeatedly to discard unsaved changes)
  Ctrl-C       Copy the current line
  Ctrl-X       Cut the current line
  Ctrl-V       Paste
  Ctrl-]       Jump to the matching bracket

Configuration is read from $XDG_CONFIG_HOME/voider/config.yaml
(default ~/.config/voider/config.yaml) and VOIDER_* environment variables.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("tab_stop", defaults.TabStop)
	viper.SetDefault("quit_times", defaults.QuitTimes)
	viper.SetDefault("status_timeout", defaults.StatusTimeout)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("log.level", defaults.Log.Level)
	for name, value := range defaults.Theme.Colors() {
		viper.SetDefault("theme."+name, value)
	}
	viper.SetDefault("syntax.languages_file", defaults.Syntax.LanguagesFile)

	viper.AddConfigPath(config.Dir())
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("VOIDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runEditor(_ *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("reading config: %w", configErr)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.File != "" {
		closeLog, err := log.Init(cfg.Log.File)
		if err != nil {
			return err
		}
		defer closeLog()
		level, _ := log.ParseLevel(cfg.Log.Level)
		log.SetMinLevel(level)
		log.Info(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed(), "version", version)
	}

	reg, err := buildRegistry(cfg.Syntax)
	if err != nil {
		return err
	}

	theme, err := editor.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	doc, status := editor.LoadDocument(path, reg, document.WithTabStop(cfg.TabStop))

	driver, err := terminal.NewTcellDriver()
	if err != nil {
		return err
	}

	ed := editor.New(driver, doc, editor.Options{
		QuitTimes:     cfg.QuitTimes,
		StatusTimeout: cfg.StatusTimeout,
		Theme:         theme,
		Version:       version,
		InitialStatus: status,
	})
	if err := ed.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// buildRegistry loads the built-in languages plus the user's additions.
func buildRegistry(sc config.SyntaxConfig) (*syntax.Registry, error) {
	reg, err := syntax.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading languages: %w", err)
	}
	if sc.LanguagesFile != "" {
		if err := reg.MergeFile(sc.LanguagesFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", sc.LanguagesFile, err)
		}
	}
	for ext, name := range sc.Extensions {
		if err := reg.Alias(ext, name); err != nil {
			return nil, fmt.Errorf("syntax.extensions: %w", err)
		}
	}
	return reg, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
