package blogcmd

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-folio/internal/blog"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

type emitted struct {
	kind  string
	value any
}

type captureSink struct {
	results []emitted
}

func (s *captureSink) Emit(_ context.Context, kind string, value any) error {
	s.results = append(s.results, emitted{kind: kind, value: value})
	return nil
}

func (s *captureSink) last(t *testing.T, kind string) any {
	t.Helper()
	if len(s.results) == 0 {
		t.Fatalf("expected %s result, sink is empty", kind)
	}
	got := s.results[len(s.results)-1]
	if got.kind != kind {
		t.Fatalf("expected kind %s, got %s", kind, got.kind)
	}
	return got.value
}

func fixtureLoader() *blog.Loader {
	fsys := fstest.MapFS{
		"first.md":  {Data: []byte("---\ntitle: First\ndate: 2024-01-01\ntags: [Go]\n---\n# First\n")},
		"second.md": {Data: []byte("---\ntitle: Second\ndate: 2024-02-01\ntags: [go, Web]\nfeatured: true\n---\nBody *two*\n")},
		"third.md":  {Data: []byte("---\ntitle: Third\ndate: 2024-03-01\ntags: [Web]\n---\nThird\n")},
		"draft.md":  {Data: []byte("---\ntitle: Draft\npublished: false\n---\nhidden\n")},
	}
	return blog.NewLoader(blog.LoaderConfig{Dir: "virtual", FS: fsys}, nil)
}

func postSlugs(t *testing.T, value any) []string {
	t.Helper()
	posts, ok := value.([]interfaces.PostMetadata)
	if !ok {
		t.Fatalf("expected []interfaces.PostMetadata, got %T", value)
	}
	out := make([]string, len(posts))
	for i, post := range posts {
		out[i] = post.Slug
	}
	return out
}

func TestListPostsHandlerSelectors(t *testing.T) {
	service := blog.NewService(fixtureLoader())

	cases := []struct {
		name string
		msg  ListPostsCommand
		want []string
	}{
		{"all", ListPostsCommand{}, []string{"third", "second", "first"}},
		{"tag folds case", ListPostsCommand{Tag: "GO"}, []string{"second", "first"}},
		{"featured", ListPostsCommand{Featured: true}, []string{"second"}},
		{"recent", ListPostsCommand{Recent: intPtr(2)}, []string{"third", "second"}},
		{"recent zero", ListPostsCommand{Recent: intPtr(0)}, []string{}},
		{"limit", ListPostsCommand{Limit: 1}, []string{"third"}},
		{"tag with limit", ListPostsCommand{Tag: "web", Limit: 1}, []string{"third"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSink{}
			handler := NewListPostsHandler(service, sink, nil)
			if err := handler.Execute(context.Background(), tc.msg); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got := postSlugs(t, sink.last(t, KindPosts)); !slices.Equal(got, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestListPostsHandlerRejectsConflictingSelectors(t *testing.T) {
	sink := &captureSink{}
	handler := NewListPostsHandler(blog.NewService(fixtureLoader()), sink, nil)

	err := handler.Execute(context.Background(), ListPostsCommand{Tag: "go", Featured: true})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(sink.results) != 0 {
		t.Fatalf("expected nothing emitted, got %v", sink.results)
	}
}

func TestShowPostHandlerRendersHTML(t *testing.T) {
	sink := &captureSink{}
	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})
	handler := NewShowPostHandler(blog.NewService(fixtureLoader()), parser, sink, nil)

	if err := handler.Execute(context.Background(), ShowPostCommand{Slug: "second", HTML: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	view, ok := sink.last(t, KindPost).(PostView)
	if !ok {
		t.Fatalf("expected PostView, got %T", sink.results[0].value)
	}
	if view.Title != "Second" || !strings.Contains(view.Content, "Body *two*") {
		t.Fatalf("unexpected post: %+v", view.Post)
	}
	if !strings.Contains(view.ContentHTML, "<em>two</em>") {
		t.Fatalf("expected rendered emphasis, got %q", view.ContentHTML)
	}
}

func TestShowPostHandlerSafeModeDropsRawHTML(t *testing.T) {
	fsys := fstest.MapFS{
		"raw.md": {Data: []byte("---\ntitle: Raw\n---\n<div class=\"note\">inline</div>\n\nText\n")},
	}
	service := blog.NewService(blog.NewLoader(blog.LoaderConfig{Dir: "virtual", FS: fsys}, nil))
	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})

	sink := &captureSink{}
	handler := NewShowPostHandler(service, parser, sink, nil)

	if err := handler.Execute(context.Background(), ShowPostCommand{Slug: "raw", HTML: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if view := sink.last(t, KindPost).(PostView); !strings.Contains(view.ContentHTML, `<div class="note">`) {
		t.Fatalf("expected raw HTML by default, got %q", view.ContentHTML)
	}

	if err := handler.Execute(context.Background(), ShowPostCommand{Slug: "raw", HTML: true, Safe: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	view := sink.last(t, KindPost).(PostView)
	if strings.Contains(view.ContentHTML, "<div") || !strings.Contains(view.ContentHTML, "<p>Text</p>") {
		t.Fatalf("expected raw HTML to be dropped, got %q", view.ContentHTML)
	}
}

func TestShowPostHandlerNotFound(t *testing.T) {
	handler := NewShowPostHandler(blog.NewService(fixtureLoader()), nil, &captureSink{}, nil)

	for _, slug := range []string{"missing", "draft"} {
		err := handler.Execute(context.Background(), ShowPostCommand{Slug: slug})
		if !blog.IsNotFound(err) {
			t.Fatalf("%s: expected not found, got %v", slug, err)
		}
		if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
			t.Fatalf("%s: expected not found category, got %v", slug, err)
		}
	}
}

func TestShowPostHandlerWithoutParser(t *testing.T) {
	handler := NewShowPostHandler(blog.NewService(fixtureLoader()), nil, &captureSink{}, nil)

	err := handler.Execute(context.Background(), ShowPostCommand{Slug: "first", HTML: true})
	if !errors.Is(err, ErrMarkdownUnavailable) {
		t.Fatalf("expected ErrMarkdownUnavailable, got %v", err)
	}
}

func TestListTagsHandlerEmitsCounts(t *testing.T) {
	sink := &captureSink{}
	handler := NewListTagsHandler(blog.NewService(fixtureLoader()), sink, nil)

	if err := handler.Execute(context.Background(), ListTagsCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	counts, ok := sink.last(t, KindTags).([]interfaces.TagCount)
	if !ok {
		t.Fatalf("expected []interfaces.TagCount, got %T", sink.results[0].value)
	}
	want := []interfaces.TagCount{
		{Tag: "Go", Count: 1},
		{Tag: "Web", Count: 2},
		{Tag: "go", Count: 1},
	}
	if !slices.Equal(counts, want) {
		t.Fatalf("want %v, got %v", want, counts)
	}
}

func TestListTagsHandlerEmitsNames(t *testing.T) {
	sink := &captureSink{}
	handler := NewListTagsHandler(blog.NewService(fixtureLoader()), sink, nil)

	if err := handler.Execute(context.Background(), ListTagsCommand{NamesOnly: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	tags, ok := sink.last(t, KindTagNames).([]string)
	if !ok {
		t.Fatalf("expected []string, got %T", sink.results[0].value)
	}
	if want := []string{"Go", "Web", "go"}; !slices.Equal(tags, want) {
		t.Fatalf("want %v, got %v", want, tags)
	}
}

func TestCheckContentHandlerReportsErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.md":     {Data: []byte("---\ntitle: OK\ndate: 2024-01-01\n---\nbody\n")},
		"broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody\n")},
	}
	loader := blog.NewLoader(blog.LoaderConfig{Dir: "virtual", FS: fsys}, nil)
	sink := &captureSink{}
	handler := NewCheckContentHandler(loader, sink, nil)

	err := handler.Execute(context.Background(), CheckContentCommand{})
	if !errors.Is(err, ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid, got %v", err)
	}
	report, ok := sink.last(t, KindCheck).(*blog.CheckReport)
	if !ok {
		t.Fatalf("expected *blog.CheckReport, got %T", sink.results[0].value)
	}
	if report.Errors != 1 || len(report.Files) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestCheckContentHandlerClean(t *testing.T) {
	sink := &captureSink{}
	handler := NewCheckContentHandler(fixtureLoader(), sink, nil)

	if err := handler.Execute(context.Background(), CheckContentCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	report := sink.last(t, KindCheck).(*blog.CheckReport)
	if !report.OK() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestToggleThemeHandler(t *testing.T) {
	cases := map[string]themes.Name{
		"red":  themes.Blue,
		"BLUE": themes.Red,
		"":     themes.Red,
	}
	for current, want := range cases {
		sink := &captureSink{}
		handler := NewToggleThemeHandler(sink, nil)
		if err := handler.Execute(context.Background(), ToggleThemeCommand{Current: current}); err != nil {
			t.Fatalf("%q: Execute: %v", current, err)
		}
		state := sink.last(t, KindTheme).(themes.State)
		if state.Theme != want {
			t.Fatalf("%q: want %s, got %s", current, want, state.Theme)
		}
		if len(state.Variables) == 0 {
			t.Fatalf("%q: expected variables in state", current)
		}
	}
}

func TestToggleThemeHandlerRejectsUnknownTheme(t *testing.T) {
	handler := NewToggleThemeHandler(&captureSink{}, nil)

	err := handler.Execute(context.Background(), ToggleThemeCommand{Current: "green"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestSelectThemeHandler(t *testing.T) {
	cases := []struct {
		current string
		name    string
		want    themes.Name
	}{
		{"red", "blue", themes.Blue},
		{"", "Red", themes.Red},
		{"blue", "blue", themes.Blue},
	}
	for _, tc := range cases {
		sink := &captureSink{}
		handler := NewSelectThemeHandler(sink, nil)
		if err := handler.Execute(context.Background(), SelectThemeCommand{Current: tc.current, Name: tc.name}); err != nil {
			t.Fatalf("%s->%s: Execute: %v", tc.current, tc.name, err)
		}
		if state := sink.last(t, KindTheme).(themes.State); state.Theme != tc.want {
			t.Fatalf("%s->%s: want %s, got %s", tc.current, tc.name, tc.want, state.Theme)
		}
	}

	for _, msg := range []SelectThemeCommand{{}, {Name: "green"}, {Current: "green", Name: "red"}} {
		err := NewSelectThemeHandler(&captureSink{}, nil).Execute(context.Background(), msg)
		if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Fatalf("%+v: expected validation category, got %v", msg, err)
		}
	}
}

func TestThemeCSSHandlerUsesFallback(t *testing.T) {
	sink := &captureSink{}
	handler := NewThemeCSSHandler(themes.Blue, sink, nil)

	if err := handler.Execute(context.Background(), ThemeCSSCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want, err := themes.CSS(themes.Blue)
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	if got := sink.last(t, KindCSS); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

type namedProvider struct {
	names []string
}

func (p *namedProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return nil
}

func TestRegisterBlogCommandsUsesThemesLogger(t *testing.T) {
	loader := fixtureLoader()
	provider := &namedProvider{}

	if _, err := RegisterBlogCommands(nil, Dependencies{Blog: blog.NewService(loader), Loader: loader}, provider); err != nil {
		t.Fatalf("RegisterBlogCommands: %v", err)
	}
	if !slices.Contains(provider.names, "folio.themes") || !slices.Contains(provider.names, "folio.commands") {
		t.Fatalf("expected themes and commands loggers, got %v", provider.names)
	}
}

func intPtr(n int) *int { return &n }

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterBlogCommands(t *testing.T) {
	loader := fixtureLoader()
	reg := &recordingRegistry{}

	set, err := RegisterBlogCommands(reg, Dependencies{
		Blog:   blog.NewService(loader),
		Loader: loader,
	}, nil)
	if err != nil {
		t.Fatalf("RegisterBlogCommands: %v", err)
	}
	if set.ListPosts == nil || set.ThemeCSS == nil {
		t.Fatalf("expected handlers to be built: %+v", set)
	}
	if len(reg.handlers) != 7 {
		t.Fatalf("expected 7 registrations, got %d", len(reg.handlers))
	}

	if _, err := RegisterBlogCommands(nil, Dependencies{}, nil); err == nil {
		t.Fatal("expected missing service to fail")
	}
}
