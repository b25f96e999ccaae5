package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/routes"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

type postItem struct {
	interfaces.PostMetadata
	URL string `json:"url,omitempty"`
}

type postResponse struct {
	interfaces.Post
	ContentHTML string `json:"contentHtml,omitempty"`
	URL         string `json:"url,omitempty"`
}

type tagItem struct {
	interfaces.TagCount
	URL string `json:"url,omitempty"`
}

type tagNameItem struct {
	Tag string `json:"tag"`
	URL string `json:"url,omitempty"`
}

type toggleRequest struct {
	Current string `json:"current"`
}

type selectRequest struct {
	Current string `json:"current"`
	Name    string `json:"name"`
}

type handlers struct {
	blog        interfaces.BlogService
	markdown    interfaces.MarkdownParser
	routes      *routes.Resolver
	recentLimit int
	theme       themes.Name
	logger      interfaces.Logger
}

func newHandlers(deps Dependencies) *handlers {
	limit := deps.RecentLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	theme := deps.Theme
	if _, ok := themes.Lookup(theme); !ok {
		theme = themes.DefaultName
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &handlers{
		blog:        deps.Blog,
		markdown:    deps.Markdown,
		routes:      deps.Routes,
		recentLimit: limit,
		theme:       theme,
		logger:      logger,
	}
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) listPosts(c *gin.Context) {
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		h.respondPosts(c, func() ([]interfaces.PostMetadata, error) {
			return h.blog.ListByTag(c.Request.Context(), tag)
		})
		return
	}
	h.respondPosts(c, func() ([]interfaces.PostMetadata, error) {
		return h.blog.ListPublished(c.Request.Context())
	})
}

func (h *handlers) listFeatured(c *gin.Context) {
	h.respondPosts(c, func() ([]interfaces.PostMetadata, error) {
		return h.blog.ListFeatured(c.Request.Context())
	})
}

func (h *handlers) listRecent(c *gin.Context) {
	limit := h.recentLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(c, "limit must be an integer")
			return
		}
		limit = parsed
	}
	h.respondPosts(c, func() ([]interfaces.PostMetadata, error) {
		return h.blog.ListRecent(c.Request.Context(), limit)
	})
}

func (h *handlers) listByTag(c *gin.Context) {
	tag := c.Param("tag")
	h.respondPosts(c, func() ([]interfaces.PostMetadata, error) {
		return h.blog.ListByTag(c.Request.Context(), tag)
	})
}

func (h *handlers) getPost(c *gin.Context) {
	post, err := h.blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := postResponse{Post: *post, URL: h.postURL(post.Slug)}
	if parseBoolQuery(c.Query("html"), false) && h.markdown != nil {
		var html []byte
		if parseBoolQuery(c.Query("safe"), false) {
			html, err = h.markdown.ParseWithOptions([]byte(post.Content), interfaces.ParseOptions{SafeMode: true})
		} else {
			html, err = h.markdown.Parse([]byte(post.Content))
		}
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp.ContentHTML = string(html)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) listTags(c *gin.Context) {
	if !parseBoolQuery(c.Query("counts"), true) {
		tags, err := h.blog.ListTags(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		items := make([]tagNameItem, len(tags))
		for i, tag := range tags {
			items[i] = tagNameItem{Tag: tag, URL: h.tagURL(tag)}
		}
		c.JSON(http.StatusOK, items)
		return
	}

	counts, err := h.blog.CountByTag(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	items := make([]tagItem, len(counts))
	for i, count := range counts {
		items[i] = tagItem{TagCount: count, URL: h.tagURL(count.Tag)}
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) themeCSS(c *gin.Context) {
	raw := c.Param("name")
	name := h.theme
	if raw != "default" {
		parsed, ok := themes.Parse(raw)
		if !ok {
			writeErrorCode(c, http.StatusNotFound, "not_found", "unknown theme "+strconv.Quote(raw))
			return
		}
		name = parsed
	}
	css, err := themes.CSS(name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

func (h *handlers) toggleTheme(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(c, "invalid JSON body")
		return
	}

	current, ok := parseOptionalTheme(req.Current)
	if !ok {
		writeBadRequest(c, "unknown theme "+strconv.Quote(req.Current))
		return
	}
	h.respondTheme(c, themes.Reduce(current, themes.Toggle()))
}

func (h *handlers) selectTheme(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON body")
		return
	}
	current, ok := parseOptionalTheme(req.Current)
	if !ok {
		writeBadRequest(c, "unknown theme "+strconv.Quote(req.Current))
		return
	}
	next, ok := themes.Parse(req.Name)
	if !ok {
		writeBadRequest(c, "unknown theme "+strconv.Quote(req.Name))
		return
	}
	h.respondTheme(c, themes.Reduce(current, themes.Select(next)))
}

func (h *handlers) respondTheme(c *gin.Context, name themes.Name) {
	state, err := themes.Describe(name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// parseOptionalTheme accepts a blank value as no theme.
func parseOptionalTheme(value string) (themes.Name, bool) {
	if strings.TrimSpace(value) == "" {
		return "", true
	}
	return themes.Parse(value)
}

func (h *handlers) respondPosts(c *gin.Context, query func() ([]interfaces.PostMetadata, error)) {
	posts, err := query()
	if err != nil {
		h.writeError(c, err)
		return
	}
	items := make([]postItem, len(posts))
	for i, post := range posts {
		items[i] = postItem{PostMetadata: post, URL: h.postURL(post.Slug)}
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) postURL(slug string) string {
	if h.routes == nil {
		return ""
	}
	url, err := h.routes.PostURL(slug)
	if err != nil {
		return ""
	}
	return url
}

func (h *handlers) tagURL(tag string) string {
	if h.routes == nil {
		return ""
	}
	url, err := h.routes.TagURL(tag)
	if err != nil {
		return ""
	}
	return url
}
