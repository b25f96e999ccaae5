package di

import (
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-folio/internal/blog"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
	"github.com/goliatone/go-folio/internal/logging/gologger"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/internal/routes"
	"github.com/goliatone/go-folio/internal/runtimeconfig"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Container wires the folio services from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	splitter       interfaces.FrontMatterSplitter
	parser         interfaces.MarkdownParser
	contentFS      fs.FS

	loader  *blog.Loader
	blogSvc *blog.Service
	routes  *routes.Resolver
	theme   themes.Name
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithMarkdownParser overrides the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithFrontMatterSplitter overrides the adrg/frontmatter splitter.
func WithFrontMatterSplitter(splitter interfaces.FrontMatterSplitter) Option {
	return func(c *Container) {
		if splitter != nil {
			c.splitter = splitter
		}
	}
}

// WithContentFS reads posts from fsys instead of cfg.Blog.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil {
		provider, err := newLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	if c.splitter == nil {
		c.splitter = markdown.Splitter{}
	}
	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		}, markdown.WithParserLogger(logging.MarkdownLogger(c.loggerProvider)))
	}

	resolver, err := routes.New(cfg.Routes.BaseURL)
	if err != nil {
		return nil, err
	}
	c.routes = resolver

	c.theme = themes.DefaultName
	if name, ok := themes.Parse(cfg.Theme.Default); ok {
		c.theme = name
	}

	c.loader = blog.NewLoader(blog.LoaderConfig{
		Dir:       cfg.Blog.ContentDir,
		Extension: cfg.Blog.Extension,
		Defaults: blog.Defaults{
			Author:         cfg.Blog.DefaultAuthor,
			WordsPerMinute: cfg.Blog.WordsPerMinute,
		},
		FS: c.contentFS,
	}, c.splitter)
	c.blogSvc = blog.NewService(c.loader, blog.WithLogger(logging.BlogLogger(c.loggerProvider)))

	logging.ModuleLogger(c.loggerProvider, "folio").Debug("folio.container.ready",
		"content_dir", cfg.Blog.ContentDir,
		"theme", string(c.theme),
	)
	return c, nil
}

func newLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		level, _ := console.ParseLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{Writer: os.Stderr, MinLevel: &level}), nil
	}
}

// LoggerProvider returns the active provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Loader returns the post loader.
func (c *Container) Loader() *blog.Loader {
	return c.loader
}

// BlogService returns the query layer.
func (c *Container) BlogService() *blog.Service {
	return c.blogSvc
}

// MarkdownParser returns the post body renderer.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// Routes returns the permalink resolver.
func (c *Container) Routes() *routes.Resolver {
	return c.routes
}

// Theme returns the configured default palette.
func (c *Container) Theme() themes.Name {
	return c.theme
}
