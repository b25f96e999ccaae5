package blog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

func newFixtureService(tb testing.TB) *Service {
	tb.Helper()
	loader := NewLoader(LoaderConfig{Dir: "testdata/posts"}, nil)
	return NewService(loader)
}

func slugs(posts []interfaces.PostMetadata) []string {
	out := make([]string, len(posts))
	for i, post := range posts {
		out[i] = post.Slug
	}
	return out
}

func TestListPublishedOrdersByDateAndSkipsBrokenFiles(t *testing.T) {
	svc := newFixtureService(t)

	posts, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}

	want := []string{"beta-notes", "same-day-a", "same-day-b", "alpha-release", "no-frontmatter"}
	if got := slugs(posts); !slices.Equal(got, want) {
		t.Fatalf("unexpected order\nwant: %v\ngot:  %v", want, got)
	}
	for _, post := range posts {
		if !post.Published {
			t.Fatalf("unpublished post %s leaked into listing", post.Slug)
		}
	}
}

func TestListPublishedAppliesDefaults(t *testing.T) {
	svc := newFixtureService(t)

	posts, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	bare := posts[len(posts)-1]

	if bare.Slug != "no-frontmatter" {
		t.Fatalf("expected no-frontmatter last, got %s", bare.Slug)
	}
	if bare.Title != "" || bare.Description != "" || bare.Date != "" {
		t.Fatalf("expected empty text fields, got %+v", bare)
	}
	if bare.Author != "Chris" {
		t.Fatalf("expected default author, got %q", bare.Author)
	}
	if bare.ReadTime != "1 min read" {
		t.Fatalf("expected computed read time, got %q", bare.ReadTime)
	}
	if bare.Tags == nil || len(bare.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", bare.Tags)
	}
	if bare.Featured || !bare.Published {
		t.Fatalf("expected featured=false published=true, got %+v", bare)
	}
}

func TestGetBySlug(t *testing.T) {
	svc := newFixtureService(t)

	post, err := svc.GetBySlug(context.Background(), "alpha-release")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if post.Title != "Alpha Release" || post.Author != "Dana" {
		t.Fatalf("unexpected metadata: %+v", post.PostMetadata)
	}
	if post.Date != "2024-01-10" {
		t.Fatalf("expected unquoted date to round trip as text, got %q", post.Date)
	}
	if post.ReadTime != "7 min read" {
		t.Fatalf("expected explicit read time, got %q", post.ReadTime)
	}
	if !slices.Equal(post.Tags, []string{"Go", "AI"}) {
		t.Fatalf("expected tags in source order, got %v", post.Tags)
	}
	if !strings.Contains(post.Content, "# Alpha Release") || strings.Contains(post.Content, "featured:") {
		t.Fatalf("unexpected content: %q", post.Content)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := newFixtureService(t)

	for _, slug := range []string{"missing", "draft-idea", "broken", "", "../posts/alpha-release", "notes"} {
		post, err := svc.GetBySlug(context.Background(), slug)
		if post != nil {
			t.Fatalf("GetBySlug(%q): expected nil post, got %+v", slug, post)
		}
		if !IsNotFound(err) {
			t.Fatalf("GetBySlug(%q): expected not found, got %v", slug, err)
		}
	}
}

func TestListFeatured(t *testing.T) {
	svc := newFixtureService(t)

	posts, err := svc.ListFeatured(context.Background())
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if got, want := slugs(posts), []string{"same-day-b", "alpha-release"}; !slices.Equal(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestListByTagIgnoresCase(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	for _, tag := range []string{"ai", "AI", " Ai "} {
		posts, err := svc.ListByTag(ctx, tag)
		if err != nil {
			t.Fatalf("ListByTag(%q): %v", tag, err)
		}
		if got, want := slugs(posts), []string{"beta-notes", "alpha-release"}; !slices.Equal(got, want) {
			t.Fatalf("ListByTag(%q): want %v, got %v", tag, want, got)
		}
	}

	posts, err := svc.ListByTag(ctx, "secret")
	if err != nil {
		t.Fatalf("ListByTag: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected unpublished tag to match nothing, got %v", slugs(posts))
	}
}

func TestListTagsKeepsCaseVariants(t *testing.T) {
	svc := newFixtureService(t)

	tags, err := svc.ListTags(context.Background())
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if want := []string{"AI", "Go", "Writing", "ai"}; !slices.Equal(tags, want) {
		t.Fatalf("want %v, got %v", want, tags)
	}
}

func TestCountByTag(t *testing.T) {
	svc := newFixtureService(t)

	counts, err := svc.CountByTag(context.Background())
	if err != nil {
		t.Fatalf("CountByTag: %v", err)
	}
	want := []interfaces.TagCount{
		{Tag: "AI", Count: 1},
		{Tag: "Go", Count: 2},
		{Tag: "Writing", Count: 2},
		{Tag: "ai", Count: 1},
	}
	if !slices.Equal(counts, want) {
		t.Fatalf("want %v, got %v", want, counts)
	}
}

func TestListRecentClampsLimit(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	cases := map[int][]string{
		2:   {"beta-notes", "same-day-a"},
		0:   {},
		-3:  {},
		100: {"beta-notes", "same-day-a", "same-day-b", "alpha-release", "no-frontmatter"},
	}
	for limit, want := range cases {
		posts, err := svc.ListRecent(ctx, limit)
		if err != nil {
			t.Fatalf("ListRecent(%d): %v", limit, err)
		}
		if got := slugs(posts); !slices.Equal(got, want) {
			t.Fatalf("ListRecent(%d): want %v, got %v", limit, want, got)
		}
	}
}

func TestServiceCreatesMissingContentDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "posts")
	svc := NewService(NewLoader(LoaderConfig{Dir: dir}, nil))

	posts, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty listing, got %v", slugs(posts))
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected content dir to be created, stat err=%v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), "anything"); !IsNotFound(err) {
		t.Fatalf("expected not found from empty dir, got %v", err)
	}
}

func TestServiceSeesEditsWithoutRestart(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(NewLoader(LoaderConfig{Dir: dir}, nil))
	ctx := context.Background()

	if posts, _ := svc.ListPublished(ctx); len(posts) != 0 {
		t.Fatalf("expected empty dir, got %v", slugs(posts))
	}

	writePost(t, dir, "fresh.md", "---\ntitle: Fresh\n---\nbody")
	posts, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Fresh" {
		t.Fatalf("expected new post to be visible, got %+v", posts)
	}

	writePost(t, dir, "fresh.md", "---\ntitle: Fresh\npublished: false\n---\nbody")
	if posts, _ := svc.ListPublished(ctx); len(posts) != 0 {
		t.Fatalf("expected unpublished edit to hide the post, got %v", slugs(posts))
	}
}

func TestServiceWithInjectedFS(t *testing.T) {
	long := strings.Repeat("word ", 401)
	fsys := fstest.MapFS{
		"long.md":     {Data: []byte("---\ntitle: Long\ndate: 2023-05-01\n---\n" + long)},
		"UPPER.MD":    {Data: []byte("---\ntitle: Wrong suffix\n---\n")},
		"nested":      {Mode: fs.ModeDir},
		"nested/x.md": {Data: []byte("---\ntitle: Nested\n---\n")},
	}
	svc := NewService(NewLoader(LoaderConfig{Dir: "virtual", FS: fsys}, nil))

	posts, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "long" {
		t.Fatalf("expected only long.md, got %v", slugs(posts))
	}
	if posts[0].ReadTime != "3 min read" {
		t.Fatalf("expected 401 words to read in 3 minutes, got %q", posts[0].ReadTime)
	}
}

func TestServiceReadsPostWithByteOrderMark(t *testing.T) {
	fsys := fstest.MapFS{
		"bom.md": {Data: []byte("\xef\xbb\xbf---\ntitle: BOM\ndate: 2024-01-02\n---\nBody text.\n")},
	}
	svc := NewService(NewLoader(LoaderConfig{Dir: "virtual", FS: fsys}, nil))

	post, err := svc.GetBySlug(context.Background(), "bom")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if post.Title != "BOM" || post.Date != "2024-01-02" {
		t.Fatalf("expected front-matter to be decoded, got %+v", post.PostMetadata)
	}
	if strings.Contains(post.Content, "title:") {
		t.Fatalf("front-matter leaked into content: %q", post.Content)
	}
}

func TestServiceLogsSkippedFiles(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewService(NewLoader(LoaderConfig{Dir: "testdata/posts"}, nil), WithLogger(logger))

	if _, err := svc.ListPublished(context.Background()); err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	entry, ok := logger.find("blog.post.skipped")
	if !ok {
		t.Fatalf("expected skipped file warning, got %+v", logger.entries)
	}
	if entry.level != "warn" || entry.fields["slug"] != "broken" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
}

func TestServiceHonoursCancelledContext(t *testing.T) {
	svc := newFixtureService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ListPublished(ctx); err == nil {
		t.Fatal("expected cancelled context to abort listing")
	}
	if _, err := svc.GetBySlug(ctx, "alpha-release"); IsNotFound(err) || err == nil {
		t.Fatalf("expected context error, got %v", err)
	}
}

func writePost(tb testing.TB, dir, name, content string) {
	tb.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", name, err)
	}
}
