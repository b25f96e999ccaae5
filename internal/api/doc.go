// Package api exposes the blog queries and theme helpers over HTTP with gin.
// Responses are JSON except the theme stylesheet, which is served as text/css.
package api
