package blog

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

func TestDecodeMetadataIsTotal(t *testing.T) {
	meta := map[string]any{
		"title":       42,
		"description": []any{"not", "a", "string"},
		"date":        time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		"author":      "",
		"tags":        []any{"Go", 7, "", "  spaced  ", map[string]any{"x": 1}},
		"featured":    "yes",
		"published":   "false",
		"unknown":     "ignored",
	}

	post := DecodeMetadata("odd-types", meta, []byte("one two"), Defaults{})

	if post.Slug != "odd-types" {
		t.Fatalf("slug must come from the file name, got %q", post.Slug)
	}
	if post.Title != "42" {
		t.Fatalf("expected scalar title to be stringified, got %q", post.Title)
	}
	if post.Description != "" {
		t.Fatalf("expected non-scalar description to be dropped, got %q", post.Description)
	}
	if post.Date != "2024-05-06" {
		t.Fatalf("expected date-only formatting, got %q", post.Date)
	}
	if post.Author != "Chris" {
		t.Fatalf("expected fallback author for empty value, got %q", post.Author)
	}
	if want := []string{"Go", "7", "spaced"}; !slices.Equal(post.Tags, want) {
		t.Fatalf("want tags %v, got %v", want, post.Tags)
	}
	if post.Featured {
		t.Fatal("expected unparsable featured value to be false")
	}
	if post.Published {
		t.Fatal("expected published \"false\" string to unpublish")
	}
}

func TestDecodeMetadataPublishedDefaults(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{nil, true},
		{true, true},
		{false, false},
		{"true", true},
		{"FALSE", false},
		{"maybe", true},
		{0, true},
	}
	for _, tc := range cases {
		meta := map[string]any{}
		if tc.value != nil {
			meta["published"] = tc.value
		}
		if got := DecodeMetadata("p", meta, nil, Defaults{}).Published; got != tc.want {
			t.Fatalf("published=%#v: want %v, got %v", tc.value, tc.want, got)
		}
	}
}

func TestDecodeMetadataSingleStringTag(t *testing.T) {
	post := DecodeMetadata("p", map[string]any{"tags": "Solo"}, nil, Defaults{})
	if !slices.Equal(post.Tags, []string{"Solo"}) {
		t.Fatalf("expected single tag, got %v", post.Tags)
	}
}

func TestDecodeMetadataUsesConfiguredDefaults(t *testing.T) {
	body := strings.Repeat("w ", 250)
	post := DecodeMetadata("p", nil, []byte(body), Defaults{Author: "Ana", WordsPerMinute: 100})

	if post.Author != "Ana" {
		t.Fatalf("expected configured author, got %q", post.Author)
	}
	if post.ReadTime != "3 min read" {
		t.Fatalf("expected 250 words at 100 wpm to be 3 minutes, got %q", post.ReadTime)
	}
}

func TestReadTime(t *testing.T) {
	cases := map[int]string{
		0:   "1 min read",
		1:   "1 min read",
		200: "1 min read",
		201: "2 min read",
		600: "3 min read",
	}
	for words, want := range cases {
		body := strings.TrimSpace(strings.Repeat("word\n\t", words))
		if got := ReadTime(body, 200); got != want {
			t.Fatalf("ReadTime(%d words) = %q, want %q", words, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, value := range []string{"2024-01-02", "2024-01-02T10:00:00Z", "2024-01-02 10:00:00", "January 2, 2024", "Jan 2, 2024"} {
		parsed, ok := ParseDate(value)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", value)
		}
		if parsed.Year() != 2024 || parsed.Month() != time.January || parsed.Day() != 2 {
			t.Fatalf("ParseDate(%q) = %v", value, parsed)
		}
	}
	if _, ok := ParseDate("someday"); ok {
		t.Fatal("expected free text to be rejected")
	}
}

func TestSortByDateDescIsStable(t *testing.T) {
	posts := []interfaces.PostMetadata{
		{Slug: "undated-1", Date: "not a date"},
		{Slug: "old", Date: "2023-12-31"},
		{Slug: "tie-1", Date: "2024-01-01"},
		{Slug: "undated-2"},
		{Slug: "tie-2", Date: "2024-01-01T00:00:00Z"},
		{Slug: "new", Date: "March 3, 2025"},
	}

	sortByDateDesc(posts)

	want := []string{"new", "tie-1", "tie-2", "old", "undated-1", "undated-2"}
	if got := slugs(posts); !slices.Equal(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
