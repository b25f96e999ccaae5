package blogcmd

import (
	"errors"

	"github.com/goliatone/go-folio/internal/blog"
	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers into a dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Dependencies are the services the blog handlers run against.
type Dependencies struct {
	Blog     interfaces.BlogService
	Loader   *blog.Loader
	Markdown interfaces.MarkdownParser
	Theme    themes.Name
	Sink     Sink
}

// HandlerSet groups the handlers built by RegisterBlogCommands.
type HandlerSet struct {
	ListPosts    *ListPostsHandler
	ShowPost     *ShowPostHandler
	ListTags     *ListTagsHandler
	CheckContent *CheckContentHandler
	ToggleTheme  *ToggleThemeHandler
	SelectTheme  *SelectThemeHandler
	ThemeCSS     *ThemeCSSHandler
}

// RegisterBlogCommands builds every blog and theme handler and registers them
// with reg when it is not nil.
func RegisterBlogCommands(reg CommandRegistry, deps Dependencies, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	if deps.Blog == nil {
		return nil, errors.New("blog command registration: blog service is nil")
	}
	if deps.Loader == nil {
		return nil, errors.New("blog command registration: loader is nil")
	}

	blogLogger := commands.CommandLogger(provider, "blog")
	themeLogger := logging.WithFields(logging.ThemesLogger(provider), map[string]any{
		"component":      "command",
		"command_module": "themes",
	})

	set := &HandlerSet{
		ListPosts:    NewListPostsHandler(deps.Blog, deps.Sink, blogLogger),
		ShowPost:     NewShowPostHandler(deps.Blog, deps.Markdown, deps.Sink, blogLogger),
		ListTags:     NewListTagsHandler(deps.Blog, deps.Sink, blogLogger),
		CheckContent: NewCheckContentHandler(deps.Loader, deps.Sink, blogLogger),
		ToggleTheme:  NewToggleThemeHandler(deps.Sink, themeLogger),
		SelectTheme:  NewSelectThemeHandler(deps.Sink, themeLogger),
		ThemeCSS:     NewThemeCSSHandler(deps.Theme, deps.Sink, themeLogger),
	}

	if reg != nil {
		for _, handler := range []any{
			set.ListPosts,
			set.ShowPost,
			set.ListTags,
			set.CheckContent,
			set.ToggleTheme,
			set.SelectTheme,
			set.ThemeCSS,
		} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
