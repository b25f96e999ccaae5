package interfaces

import "context"

// PostMetadata is the listing view of a blog post. Field names on the wire
// follow the contract consumed by the site frontend.
type PostMetadata struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Author      string   `json:"author" yaml:"author"`
	Tags        []string `json:"tags" yaml:"tags"`
	ReadTime    string   `json:"readTime" yaml:"readTime"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Published   bool     `json:"published" yaml:"published"`
}

// Post is a single published post including its markdown body.
type Post struct {
	PostMetadata `yaml:",inline"`
	Content      string `json:"content" yaml:"content"`
}

// TagCount pairs a tag with the number of published posts carrying it.
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// BlogService answers read queries over the content directory. Every call
// re-reads the directory so edits are visible immediately.
type BlogService interface {
	ListPublished(ctx context.Context) ([]PostMetadata, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ListFeatured(ctx context.Context) ([]PostMetadata, error)
	ListByTag(ctx context.Context, tag string) ([]PostMetadata, error)
	ListTags(ctx context.Context) ([]string, error)
	ListRecent(ctx context.Context, limit int) ([]PostMetadata, error)
	CountByTag(ctx context.Context) ([]TagCount, error)
}
