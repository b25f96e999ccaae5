package routes

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	GroupFrontend = "frontend"

	RouteBlog = "blog"
	RoutePost = "post"
	RouteTag  = "tag"
)

// DefaultPaths are the frontend permalink templates.
var DefaultPaths = map[string]string{
	RouteBlog: "/blog",
	RoutePost: "/blog/:slug",
	RouteTag:  "/blog/tag/:tag",
}

// Resolver builds frontend permalinks for posts and tags.
type Resolver struct {
	manager *urlkit.RouteManager
	group   *urlkit.Group
}

// New creates a Resolver rooted at baseURL, which may be empty for
// host-relative links.
func New(baseURL string) (*Resolver, error) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    GroupFrontend,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths:   DefaultPaths,
			},
		},
	})
	group, err := lookupGroup(manager, GroupFrontend)
	if err != nil {
		return nil, err
	}
	return &Resolver{manager: manager, group: group}, nil
}

// BlogURL links to the post index.
func (r *Resolver) BlogURL() (string, error) {
	return r.build(RouteBlog, nil)
}

// PostURL links to a single post.
func (r *Resolver) PostURL(slug string) (string, error) {
	return r.build(RoutePost, map[string]any{"slug": slug})
}

// TagURL links to the listing for tag. Tags are lower-cased since tag
// matching ignores case.
func (r *Resolver) TagURL(tag string) (string, error) {
	return r.build(RouteTag, map[string]any{"tag": strings.ToLower(strings.TrimSpace(tag))})
}

func (r *Resolver) build(route string, params map[string]any) (string, error) {
	if r == nil || r.group == nil {
		return "", fmt.Errorf("routes: resolver not configured")
	}
	builder, err := safeBuilder(r.group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("routes: build %s: %w", route, err)
	}
	return url, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route %q not found: %v", route, rec)
		}
	}()
	return group.Builder(route), nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	return manager.Group(name), nil
}
