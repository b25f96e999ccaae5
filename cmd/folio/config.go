package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	folio "github.com/goliatone/go-folio"
)

const (
	configFileName = "folio"
	configFileType = "yaml"
	envPrefix      = "FOLIO"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"content-dir": "blog.content_dir",
	"log-level":   "logging.level",
	"addr":        "server.addr",
}

// loadConfig layers defaults, the config file, FOLIO_* environment variables
// and explicitly set flags, in increasing precedence.
func loadConfig(cmd *cobra.Command, configFile string) (folio.Config, error) {
	v := viper.New()
	setDefaults(v, folio.DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return folio.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return folio.Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var cfg folio.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return folio.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so environment variables are seen by
// Unmarshal.
func setDefaults(v *viper.Viper, cfg folio.Config) {
	v.SetDefault("blog.content_dir", cfg.Blog.ContentDir)
	v.SetDefault("blog.extension", cfg.Blog.Extension)
	v.SetDefault("blog.default_author", cfg.Blog.DefaultAuthor)
	v.SetDefault("blog.words_per_minute", cfg.Blog.WordsPerMinute)
	v.SetDefault("blog.recent_limit", cfg.Blog.RecentLimit)
	v.SetDefault("markdown.extensions", cfg.Markdown.Extensions)
	v.SetDefault("markdown.hard_wraps", cfg.Markdown.HardWraps)
	v.SetDefault("markdown.safe_mode", cfg.Markdown.SafeMode)
	v.SetDefault("theme.default", cfg.Theme.Default)
	v.SetDefault("routes.base_url", cfg.Routes.BaseURL)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
	v.SetDefault("features.logger", cfg.Features.Logger)
}
