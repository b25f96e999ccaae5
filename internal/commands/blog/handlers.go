package blogcmd

import (
	"context"
	"errors"
	"strings"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-folio/internal/blog"
	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	listPostsOperation    = "blog.list_posts"
	showPostOperation     = "blog.show_post"
	listTagsOperation     = "blog.list_tags"
	checkContentOperation = "blog.check_content"
	toggleThemeOperation  = "themes.toggle"
	selectThemeOperation  = "themes.select"
	themeCSSOperation     = "themes.css"
)

var (
	// ErrMarkdownUnavailable is returned when HTML output is requested without a parser.
	ErrMarkdownUnavailable = errors.New("blog command: markdown parser not configured")
	// ErrContentInvalid is returned by the check handler when any file has errors.
	ErrContentInvalid = errors.New("blog command: content check found errors")
)

var (
	_ command.Commander[ListPostsCommand]    = (*ListPostsHandler)(nil)
	_ command.Commander[ShowPostCommand]     = (*ShowPostHandler)(nil)
	_ command.Commander[ListTagsCommand]     = (*ListTagsHandler)(nil)
	_ command.Commander[CheckContentCommand] = (*CheckContentHandler)(nil)
	_ command.Commander[ToggleThemeCommand]  = (*ToggleThemeHandler)(nil)
	_ command.Commander[SelectThemeCommand]  = (*SelectThemeHandler)(nil)
	_ command.Commander[ThemeCSSCommand]     = (*ThemeCSSHandler)(nil)
)

// ListPostsHandler runs ListPostsCommand against the blog service.
type ListPostsHandler struct {
	inner *commands.Handler[ListPostsCommand]
}

// NewListPostsHandler builds a ListPostsHandler.
func NewListPostsHandler(service interfaces.BlogService, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ListPostsCommand]) *ListPostsHandler {
	sink = sinkOrDiscard(sink)
	exec := func(ctx context.Context, msg ListPostsCommand) error {
		var (
			posts []interfaces.PostMetadata
			err   error
		)
		switch tag := strings.TrimSpace(msg.Tag); {
		case tag != "":
			posts, err = service.ListByTag(ctx, tag)
		case msg.Featured:
			posts, err = service.ListFeatured(ctx)
		case msg.Recent != nil:
			posts, err = service.ListRecent(ctx, *msg.Recent)
		default:
			posts, err = service.ListPublished(ctx)
		}
		if err != nil {
			return err
		}
		if msg.Limit > 0 && len(posts) > msg.Limit {
			posts = posts[:msg.Limit]
		}
		return sink.Emit(ctx, KindPosts, posts)
	}

	handlerOpts := []commands.HandlerOption[ListPostsCommand]{
		commands.WithLogger[ListPostsCommand](logger),
		commands.WithOperation[ListPostsCommand](listPostsOperation),
		commands.WithMessageFields(func(msg ListPostsCommand) map[string]any {
			fields := map[string]any{}
			if msg.Tag != "" {
				fields["tag"] = msg.Tag
			}
			if msg.Featured {
				fields["featured"] = true
			}
			if msg.Recent != nil {
				fields["recent"] = *msg.Recent
			}
			if msg.Limit > 0 {
				fields["limit"] = msg.Limit
			}
			return fields
		}),
	}
	return &ListPostsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ListPostsCommand].
func (h *ListPostsHandler) Execute(ctx context.Context, msg ListPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ShowPostHandler runs ShowPostCommand.
type ShowPostHandler struct {
	inner *commands.Handler[ShowPostCommand]
}

// NewShowPostHandler builds a ShowPostHandler. parser may be nil when HTML
// output is never requested.
func NewShowPostHandler(service interfaces.BlogService, parser interfaces.MarkdownParser, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ShowPostCommand]) *ShowPostHandler {
	sink = sinkOrDiscard(sink)
	exec := func(ctx context.Context, msg ShowPostCommand) error {
		post, err := service.GetBySlug(ctx, strings.TrimSpace(msg.Slug))
		if err != nil {
			return err
		}
		view := PostView{Post: *post}
		if msg.HTML {
			if parser == nil {
				return ErrMarkdownUnavailable
			}
			var html []byte
			if msg.Safe {
				html, err = parser.ParseWithOptions([]byte(post.Content), interfaces.ParseOptions{SafeMode: true})
			} else {
				html, err = parser.Parse([]byte(post.Content))
			}
			if err != nil {
				return err
			}
			view.ContentHTML = string(html)
		}
		return sink.Emit(ctx, KindPost, view)
	}

	handlerOpts := []commands.HandlerOption[ShowPostCommand]{
		commands.WithLogger[ShowPostCommand](logger),
		commands.WithOperation[ShowPostCommand](showPostOperation),
		commands.WithMessageFields(func(msg ShowPostCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "html": msg.HTML, "safe": msg.Safe}
		}),
	}
	return &ShowPostHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ShowPostCommand].
func (h *ShowPostHandler) Execute(ctx context.Context, msg ShowPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListTagsHandler runs ListTagsCommand and emits per-tag counts, or the tag
// names alone.
type ListTagsHandler struct {
	inner *commands.Handler[ListTagsCommand]
}

// NewListTagsHandler builds a ListTagsHandler.
func NewListTagsHandler(service interfaces.BlogService, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ListTagsCommand]) *ListTagsHandler {
	sink = sinkOrDiscard(sink)
	exec := func(ctx context.Context, msg ListTagsCommand) error {
		if msg.NamesOnly {
			tags, err := service.ListTags(ctx)
			if err != nil {
				return err
			}
			return sink.Emit(ctx, KindTagNames, tags)
		}
		counts, err := service.CountByTag(ctx)
		if err != nil {
			return err
		}
		return sink.Emit(ctx, KindTags, counts)
	}

	handlerOpts := []commands.HandlerOption[ListTagsCommand]{
		commands.WithLogger[ListTagsCommand](logger),
		commands.WithOperation[ListTagsCommand](listTagsOperation),
		commands.WithMessageFields(func(msg ListTagsCommand) map[string]any {
			return map[string]any{"names_only": msg.NamesOnly}
		}),
	}
	return &ListTagsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ListTagsCommand].
func (h *ListTagsHandler) Execute(ctx context.Context, msg ListTagsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CheckContentHandler lints the content directory. The report is always
// emitted; ErrContentInvalid follows when any file has errors.
type CheckContentHandler struct {
	inner *commands.Handler[CheckContentCommand]
}

// NewCheckContentHandler builds a CheckContentHandler over loader.
func NewCheckContentHandler(loader *blog.Loader, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[CheckContentCommand]) *CheckContentHandler {
	sink = sinkOrDiscard(sink)
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	exec := func(ctx context.Context, _ CheckContentCommand) error {
		report, err := blog.Check(ctx, loader)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"file_count":    len(report.Files),
			"error_count":   report.Errors,
			"warning_count": report.Warnings,
		}).Info("blog.command.check_content.completed")

		if err := sink.Emit(ctx, KindCheck, report); err != nil {
			return err
		}
		if !report.OK() {
			return goerrors.Wrap(ErrContentInvalid, goerrors.CategoryValidation, "content check failed").
				WithTextCode("CONTENT_INVALID")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckContentCommand]{
		commands.WithLogger[CheckContentCommand](baseLogger),
		commands.WithOperation[CheckContentCommand](checkContentOperation),
		commands.WithMessageFields(func(CheckContentCommand) map[string]any {
			return map[string]any{"dir": loader.Dir()}
		}),
	}
	return &CheckContentHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[CheckContentCommand].
func (h *CheckContentHandler) Execute(ctx context.Context, msg CheckContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ToggleThemeHandler emits the state of the theme following msg.Current.
type ToggleThemeHandler struct {
	inner *commands.Handler[ToggleThemeCommand]
}

// NewToggleThemeHandler builds a ToggleThemeHandler.
func NewToggleThemeHandler(sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ToggleThemeCommand]) *ToggleThemeHandler {
	sink = sinkOrDiscard(sink)
	logger = loggerOrNoOp(logger)
	exec := func(ctx context.Context, msg ToggleThemeCommand) error {
		current, _ := themes.Parse(msg.Current)
		return emitTheme(ctx, sink, logger, current, themes.Toggle())
	}

	handlerOpts := []commands.HandlerOption[ToggleThemeCommand]{
		commands.WithLogger[ToggleThemeCommand](logger),
		commands.WithOperation[ToggleThemeCommand](toggleThemeOperation),
		commands.WithMessageFields(func(msg ToggleThemeCommand) map[string]any {
			return map[string]any{"current": msg.Current}
		}),
	}
	return &ToggleThemeHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ToggleThemeCommand].
func (h *ToggleThemeHandler) Execute(ctx context.Context, msg ToggleThemeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SelectThemeHandler emits the state of the theme chosen by msg.Name.
type SelectThemeHandler struct {
	inner *commands.Handler[SelectThemeCommand]
}

// NewSelectThemeHandler builds a SelectThemeHandler.
func NewSelectThemeHandler(sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[SelectThemeCommand]) *SelectThemeHandler {
	sink = sinkOrDiscard(sink)
	logger = loggerOrNoOp(logger)
	exec := func(ctx context.Context, msg SelectThemeCommand) error {
		current, _ := themes.Parse(msg.Current)
		next, _ := themes.Parse(msg.Name)
		return emitTheme(ctx, sink, logger, current, themes.Select(next))
	}

	handlerOpts := []commands.HandlerOption[SelectThemeCommand]{
		commands.WithLogger[SelectThemeCommand](logger),
		commands.WithOperation[SelectThemeCommand](selectThemeOperation),
		commands.WithMessageFields(func(msg SelectThemeCommand) map[string]any {
			return map[string]any{"current": msg.Current, "theme": msg.Name}
		}),
	}
	return &SelectThemeHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[SelectThemeCommand].
func (h *SelectThemeHandler) Execute(ctx context.Context, msg SelectThemeCommand) error {
	return h.inner.Execute(ctx, msg)
}

func emitTheme(ctx context.Context, sink Sink, logger interfaces.Logger, current themes.Name, action themes.Action) error {
	next := themes.Reduce(current, action)
	state, err := themes.Describe(next)
	if err != nil {
		return err
	}
	logger.WithContext(ctx).Info("themes.changed", "from", string(current), "to", string(next))
	return sink.Emit(ctx, KindTheme, state)
}

// ThemeCSSHandler emits the stylesheet of a palette.
type ThemeCSSHandler struct {
	inner *commands.Handler[ThemeCSSCommand]
}

// NewThemeCSSHandler builds a ThemeCSSHandler. fallback names the palette
// used for blank names; an unknown fallback resolves to themes.DefaultName.
func NewThemeCSSHandler(fallback themes.Name, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[ThemeCSSCommand]) *ThemeCSSHandler {
	sink = sinkOrDiscard(sink)
	if _, ok := themes.Lookup(fallback); !ok {
		fallback = themes.DefaultName
	}
	exec := func(ctx context.Context, msg ThemeCSSCommand) error {
		name := fallback
		if strings.TrimSpace(msg.Name) != "" {
			name, _ = themes.Parse(msg.Name)
		}
		css, err := themes.CSS(name)
		if err != nil {
			return err
		}
		return sink.Emit(ctx, KindCSS, css)
	}

	handlerOpts := []commands.HandlerOption[ThemeCSSCommand]{
		commands.WithLogger[ThemeCSSCommand](logger),
		commands.WithOperation[ThemeCSSCommand](themeCSSOperation),
		commands.WithMessageFields(func(msg ThemeCSSCommand) map[string]any {
			return map[string]any{"theme": msg.Name}
		}),
	}
	return &ThemeCSSHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ThemeCSSCommand].
func (h *ThemeCSSHandler) Execute(ctx context.Context, msg ThemeCSSCommand) error {
	return h.inner.Execute(ctx, msg)
}

func loggerOrNoOp(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}

func sinkOrDiscard(sink Sink) Sink {
	if sink == nil {
		return discardSink{}
	}
	return sink
}
