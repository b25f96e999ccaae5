package folio

import "github.com/goliatone/go-folio/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrExtensionInvalid        = runtimeconfig.ErrExtensionInvalid
	ErrWordsPerMinuteInvalid   = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrRecentLimitInvalid      = runtimeconfig.ErrRecentLimitInvalid
	ErrThemeUnknown            = runtimeconfig.ErrThemeUnknown
	ErrBaseURLInvalid          = runtimeconfig.ErrBaseURLInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	BlogConfig     = runtimeconfig.BlogConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	ThemeConfig    = runtimeconfig.ThemeConfig
	RoutesConfig   = runtimeconfig.RoutesConfig
	ServerConfig   = runtimeconfig.ServerConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

// DefaultConfig returns the baseline configuration: posts under ./posts,
// default author Chris, 200 words per minute and the red theme.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
