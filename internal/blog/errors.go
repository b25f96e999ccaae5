package blog

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrPostNotFound is returned by lookups for posts that do not exist, are
// unpublished or cannot be read.
var ErrPostNotFound = errors.New("blog: post not found")

const textCodePostNotFound = "POST_NOT_FOUND"

func notFound(slug string) error {
	return goerrors.Wrap(ErrPostNotFound, goerrors.CategoryNotFound, "post "+slug+" not found").
		WithTextCode(textCodePostNotFound)
}

// IsNotFound reports whether err signals a missing post.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.IsCategory(err, goerrors.CategoryNotFound) || errors.Is(err, ErrPostNotFound)
}
