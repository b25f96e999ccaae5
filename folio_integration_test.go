package folio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	folio "github.com/goliatone/go-folio"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestModuleQueriesContentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "posts")
	cfg := folio.DefaultConfig()
	cfg.Blog.ContentDir = dir
	cfg.Features.Logger = false

	module, err := folio.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	posts, err := module.Blog().ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty listing for a fresh directory, got %v", posts)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected content directory to be created: %v", err)
	}

	writeFile(t, dir, "hello.md", "---\ntitle: Hello\ndate: 2024-05-01\ntags: [Go]\n---\nHello there.\n")
	writeFile(t, dir, "hidden.md", "---\ntitle: Hidden\npublished: false\n---\nSecret.\n")

	posts, err = module.Blog().ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello" || posts[0].Author != "Chris" {
		t.Fatalf("unexpected posts: %+v", posts)
	}

	post, err := module.Blog().GetBySlug(ctx, "hello")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if post.Title != "Hello" || post.ReadTime != "1 min read" {
		t.Fatalf("unexpected post: %+v", post)
	}

	if _, err := module.Blog().GetBySlug(ctx, "hidden"); !folio.IsNotFound(err) {
		t.Fatalf("expected hidden post to be not found, got %v", err)
	}

	report, err := module.Check(ctx)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.OK() || len(report.Files) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestToggleTheme(t *testing.T) {
	if got := folio.ToggleTheme("red"); got != "blue" {
		t.Fatalf("expected blue, got %s", got)
	}
	if got := folio.ToggleTheme("blue"); got != "red" {
		t.Fatalf("expected red, got %s", got)
	}
	css, err := folio.ThemeCSS("red")
	if err != nil || css == "" {
		t.Fatalf("ThemeCSS: %q %v", css, err)
	}
}
