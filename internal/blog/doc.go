// Package blog loads markdown posts from a content directory and answers the
// read queries used by the site: published listing, single post lookup,
// featured, by tag, tag index and recent posts.
//
// Nothing is cached. Each query lists and parses the directory again, so
// edits to post files show up on the next call.
package blog
