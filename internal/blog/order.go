package blog

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate interprets a front-matter date string. It reports false when no
// known layout matches.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// sortByDateDesc orders posts newest first. Posts with equal or unparsable
// dates keep their relative order; undated posts go last.
func sortByDateDesc(posts []interfaces.PostMetadata) {
	keys := make(map[string]time.Time, len(posts))
	for _, post := range posts {
		parsed, _ := ParseDate(post.Date)
		keys[post.Slug] = parsed
	}
	slices.SortStableFunc(posts, func(a, b interfaces.PostMetadata) int {
		return keys[b.Slug].Compare(keys[a.Slug])
	})
}

// foldTag returns the case-insensitive comparison key for a tag. A Caser
// holds state, so each call gets its own.
func foldTag(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}

func hasTag(post interfaces.PostMetadata, folded string) bool {
	return slices.ContainsFunc(post.Tags, func(tag string) bool {
		return foldTag(tag) == folded
	})
}
