package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrContentDirRequired = errors.New("folio config: blog content directory is required")
var ErrExtensionInvalid = errors.New("folio config: blog file extension must start with a dot")
var ErrWordsPerMinuteInvalid = errors.New("folio config: words per minute must be positive")
var ErrRecentLimitInvalid = errors.New("folio config: recent limit must be zero or positive")

// ErrThemeUnknown is returned when the default theme is not one of the built in palettes.
var ErrThemeUnknown = errors.New("folio config: default theme is unknown")

// ErrBaseURLInvalid rejects route base URLs that are neither empty, absolute nor rooted.
var ErrBaseURLInvalid = errors.New("folio config: routes base url is invalid")
var ErrLoggingProviderRequired = errors.New("folio config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("folio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("folio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("folio config: logging format is invalid")

// Config aggregates the settings for the blog module. It is populated from
// defaults, then a config file, environment and flags by the CLI.
type Config struct {
	Blog     BlogConfig     `mapstructure:"blog"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Routes   RoutesConfig   `mapstructure:"routes"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Features Features       `mapstructure:"features"`
}

// BlogConfig describes the content directory and post defaults.
type BlogConfig struct {
	ContentDir     string `mapstructure:"content_dir"`
	Extension      string `mapstructure:"extension"`
	DefaultAuthor  string `mapstructure:"default_author"`
	WordsPerMinute int    `mapstructure:"words_per_minute"`
	RecentLimit    int    `mapstructure:"recent_limit"`
}

// MarkdownConfig holds goldmark defaults used when rendering post bodies.
type MarkdownConfig struct {
	Extensions []string `mapstructure:"extensions"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
}

type ThemeConfig struct {
	Default string `mapstructure:"default"`
}

// RoutesConfig controls permalink generation.
type RoutesConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoggingConfig selects the logging provider. Format applies to gologger only.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// Features toggles optional behaviour.
type Features struct {
	Logger bool `mapstructure:"logger"`
}

// DefaultConfig returns the settings used when nothing else is supplied.
func DefaultConfig() Config {
	return Config{
		Blog: BlogConfig{
			ContentDir:     "posts",
			Extension:      ".md",
			DefaultAuthor:  "Chris",
			WordsPerMinute: 200,
			RecentLimit:    5,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
			SafeMode:   true,
		},
		Theme: ThemeConfig{
			Default: "red",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Logger: true,
		},
	}
}

// Validate performs consistency checks and returns the first problem found.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Blog.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if ext := cfg.Blog.Extension; ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%w: %s", ErrExtensionInvalid, ext)
	}
	if cfg.Blog.WordsPerMinute <= 0 {
		return fmt.Errorf("%w: %d", ErrWordsPerMinuteInvalid, cfg.Blog.WordsPerMinute)
	}
	if cfg.Blog.RecentLimit < 0 {
		return fmt.Errorf("%w: %d", ErrRecentLimitInvalid, cfg.Blog.RecentLimit)
	}
	if name := normalize(cfg.Theme.Default); name != "" && name != "red" && name != "blue" {
		return fmt.Errorf("%w: %s", ErrThemeUnknown, cfg.Theme.Default)
	}
	if base := strings.TrimSpace(cfg.Routes.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || (!parsed.IsAbs() && !strings.HasPrefix(base, "/")) {
			return fmt.Errorf("%w: %s", ErrBaseURLInvalid, base)
		}
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
