// Package markdown splits post files into front-matter and body and renders
// bodies to HTML with goldmark.
package markdown
