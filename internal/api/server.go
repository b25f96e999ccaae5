package api

import (
	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/routes"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const defaultRecentLimit = 5

// Dependencies are the services the API answers from.
type Dependencies struct {
	Blog     interfaces.BlogService
	Markdown interfaces.MarkdownParser
	// Routes builds the url field of listing items. Nil leaves it empty.
	Routes *routes.Resolver
	// RecentLimit is used by /api/recent when no limit is given.
	RecentLimit int
	// Theme is served by /api/themes/default/css.
	Theme  themes.Name
	Logger interfaces.Logger
}

// NewRouter builds a gin engine with recovery, request ids, access logging
// and every API route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(deps.Logger))
	RegisterRoutes(r, deps)
	return r
}

// RegisterRoutes mounts the API under /api on r.
func RegisterRoutes(r gin.IRouter, deps Dependencies) {
	h := newHandlers(deps)

	group := r.Group("/api")
	group.GET("/health", h.health)
	group.GET("/posts", h.listPosts)
	group.GET("/posts/:slug", h.getPost)
	group.GET("/featured", h.listFeatured)
	group.GET("/recent", h.listRecent)
	group.GET("/tags", h.listTags)
	group.GET("/tags/:tag", h.listByTag)
	group.GET("/themes/:name/css", h.themeCSS)
	group.POST("/themes/toggle", h.toggleTheme)
	group.POST("/themes/select", h.selectTheme)
}
