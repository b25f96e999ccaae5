package blog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Defaults are applied to fields missing from a post's front-matter.
type Defaults struct {
	Author         string
	WordsPerMinute int
}

const (
	defaultAuthor         = "Chris"
	defaultWordsPerMinute = 200
)

func (d Defaults) normalized() Defaults {
	if strings.TrimSpace(d.Author) == "" {
		d.Author = defaultAuthor
	}
	if d.WordsPerMinute <= 0 {
		d.WordsPerMinute = defaultWordsPerMinute
	}
	return d
}

// DecodeMetadata builds post metadata from a parsed front-matter map. It
// never fails: values of the wrong shape fall back to the field default.
func DecodeMetadata(slug string, meta map[string]any, body []byte, defaults Defaults) interfaces.PostMetadata {
	defaults = defaults.normalized()

	post := interfaces.PostMetadata{
		Slug:        slug,
		Title:       stringValue(meta["title"]),
		Description: stringValue(meta["description"]),
		Date:        stringValue(meta["date"]),
		Author:      stringValue(meta["author"]),
		Tags:        tagsValue(meta["tags"]),
		ReadTime:    stringValue(meta["readTime"]),
		Featured:    boolValue(meta["featured"], false),
		Published:   boolValue(meta["published"], true),
	}
	if post.Author == "" {
		post.Author = defaults.Author
	}
	if post.ReadTime == "" {
		post.ReadTime = ReadTime(string(body), defaults.WordsPerMinute)
	}
	return post
}

// ReadTime estimates reading time as whole minutes, rounded up, never less
// than one.
func ReadTime(body string, wordsPerMinute int) string {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return formatTime(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return formatTime(*v)
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

func tagsValue(value any) []string {
	switch v := value.(type) {
	case string:
		if tag := strings.TrimSpace(v); tag != "" {
			return []string{tag}
		}
	case []string:
		return compactTags(v)
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			tags = append(tags, stringValue(item))
		}
		return compactTags(tags)
	}
	return []string{}
}

func compactTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, tag := range in {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// boolValue reads a bool or a strconv.ParseBool string. Anything else yields
// fallback.
func boolValue(value any, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}
