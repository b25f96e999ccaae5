package blog

import (
	"context"
	"errors"
	"io/fs"
	"slices"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// PostSource is the slice of Loader behaviour the service depends on.
type PostSource interface {
	LoadAll(ctx context.Context) (*LoadResult, error)
	LoadPost(ctx context.Context, slug string) (*Record, error)
}

// Service answers blog queries. It re-reads the source on every call.
type Service struct {
	source PostSource
	logger interfaces.Logger
}

var _ interfaces.BlogService = (*Service)(nil)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService returns a Service reading from source.
func NewService(source PostSource, opts ...ServiceOption) *Service {
	s := &Service{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListPublished returns every published post, newest first.
func (s *Service) ListPublished(ctx context.Context) ([]interfaces.PostMetadata, error) {
	result, err := s.source.LoadAll(ctx)
	if err != nil {
		s.logger.Error("blog.posts.load_failed", "error", err)
		return nil, err
	}
	for _, issue := range result.Issues {
		logging.WithPostContext(s.logger, issue.Slug, issue.Path).
			Warn("blog.post.skipped", "error", issue.Err)
	}

	posts := make([]interfaces.PostMetadata, 0, len(result.Records))
	for _, record := range result.Records {
		if record.Metadata.Published {
			posts = append(posts, record.Metadata)
		}
	}
	sortByDateDesc(posts)
	return posts, nil
}

// GetBySlug returns the published post named slug including its body. Missing,
// unpublished and unreadable posts all return an error matched by IsNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*interfaces.Post, error) {
	record, err := s.source.LoadPost(ctx, slug)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger := logging.WithPostContext(s.logger, slug, "")
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("blog.post.missing")
		} else {
			logger.Error("blog.post.unreadable", "error", err)
		}
		return nil, notFound(slug)
	}
	if !record.Metadata.Published {
		return nil, notFound(slug)
	}
	return &interfaces.Post{
		PostMetadata: record.Metadata,
		Content:      record.Body,
	}, nil
}

// ListFeatured returns published posts flagged as featured, newest first.
func (s *Service) ListFeatured(ctx context.Context) ([]interfaces.PostMetadata, error) {
	posts, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(posts, func(post interfaces.PostMetadata) bool {
		return !post.Featured
	}), nil
}

// ListByTag returns published posts carrying tag, compared without regard to
// case.
func (s *Service) ListByTag(ctx context.Context, tag string) ([]interfaces.PostMetadata, error) {
	posts, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	folded := foldTag(tag)
	return slices.DeleteFunc(posts, func(post interfaces.PostMetadata) bool {
		return !hasTag(post, folded)
	}), nil
}

// ListTags returns the distinct tags of published posts sorted
// lexicographically. Tags differing only in case are kept apart.
func (s *Service) ListTags(ctx context.Context) ([]string, error) {
	posts, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return distinctTags(posts), nil
}

// CountByTag pairs each tag from ListTags with the number of published posts
// carrying it verbatim.
func (s *Service) CountByTag(ctx context.Context) ([]interfaces.TagCount, error) {
	posts, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	tags := distinctTags(posts)
	out := make([]interfaces.TagCount, len(tags))
	for i, tag := range tags {
		out[i] = interfaces.TagCount{Tag: tag}
		for _, post := range posts {
			if slices.Contains(post.Tags, tag) {
				out[i].Count++
			}
		}
	}
	return out, nil
}

func distinctTags(posts []interfaces.PostMetadata) []string {
	tags := []string{}
	for _, post := range posts {
		tags = append(tags, post.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// ListRecent returns the newest limit published posts. limit is clamped to
// the number of posts; negative values return nothing.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]interfaces.PostMetadata, error) {
	posts, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return posts[:max(0, min(limit, len(posts)))], nil
}
