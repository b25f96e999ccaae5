// Package folio loads markdown blog posts from a content directory and
// answers listing, lookup and tag queries over them.
package folio

import (
	"context"

	"github.com/goliatone/go-folio/internal/blog"
	"github.com/goliatone/go-folio/internal/di"
	"github.com/goliatone/go-folio/internal/routes"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

type (
	// PostMetadata is the listing view of a post.
	PostMetadata = interfaces.PostMetadata
	// Post is a published post with its markdown body.
	Post = interfaces.Post
	// TagCount pairs a tag with its published post count.
	TagCount = interfaces.TagCount
	// BlogService is the query layer contract.
	BlogService = interfaces.BlogService
	// CheckReport is the result of a content directory check.
	CheckReport = blog.CheckReport
	// ThemeName identifies a colour palette.
	ThemeName = themes.Name
)

// ErrPostNotFound is matched by IsNotFound for missing or unpublished posts.
var ErrPostNotFound = blog.ErrPostNotFound

// IsNotFound reports whether err means the requested post does not exist or
// is not published.
func IsNotFound(err error) bool {
	return blog.IsNotFound(err)
}

// Module is the top level folio runtime.
type Module struct {
	container *di.Container
}

// New constructs a Module from cfg with optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container.
func (m *Module) Container() *di.Container {
	return m.container
}

// Blog returns the query layer.
func (m *Module) Blog() BlogService {
	return m.container.BlogService()
}

// Markdown returns the post body renderer.
func (m *Module) Markdown() interfaces.MarkdownParser {
	return m.container.MarkdownParser()
}

// Routes returns the permalink resolver.
func (m *Module) Routes() *routes.Resolver {
	return m.container.Routes()
}

// LoggerProvider returns the configured provider, nil when logging is off.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// Theme returns the configured default palette.
func (m *Module) Theme() ThemeName {
	return m.container.Theme()
}

// Check lints the content directory.
func (m *Module) Check(ctx context.Context) (*CheckReport, error) {
	return blog.Check(ctx, m.container.Loader())
}

// ToggleTheme returns the palette that follows current.
func ToggleTheme(current ThemeName) ThemeName {
	return themes.Reduce(current, themes.Toggle())
}

// ThemeCSS renders the stylesheet for a palette.
func ThemeCSS(name ThemeName) (string, error) {
	return themes.CSS(name)
}
