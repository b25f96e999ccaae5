package blogcmd

import (
	"context"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Result kinds passed to Sink.Emit.
const (
	KindPosts    = "posts"
	KindPost     = "post"
	KindTags     = "tags"
	KindTagNames = "tag_names"
	KindCheck    = "check"
	KindTheme    = "theme"
	KindCSS      = "css"
)

// Sink receives command results. The CLI printer is the main implementation.
//
// Values by kind: KindPosts []interfaces.PostMetadata, KindPost PostView,
// KindTags []interfaces.TagCount, KindTagNames []string, KindCheck *blog.CheckReport, KindTheme
// themes.State and KindCSS string.
type Sink interface {
	Emit(ctx context.Context, kind string, value any) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, kind string, value any) error

// Emit implements Sink.
func (f SinkFunc) Emit(ctx context.Context, kind string, value any) error {
	return f(ctx, kind, value)
}

// PostView is a post with its optional rendered body.
type PostView struct {
	interfaces.Post `yaml:",inline"`
	ContentHTML     string `json:"contentHtml,omitempty" yaml:"contentHtml,omitempty"`
}

type discardSink struct{}

func (discardSink) Emit(context.Context, string, any) error { return nil }
