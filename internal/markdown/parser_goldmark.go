package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser. It holds no mutable
// state and is safe for concurrent use.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
	engine   goldmark.Markdown
	logger   interfaces.Logger
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// ParserOption configures a GoldmarkParser.
type ParserOption func(*GoldmarkParser)

// WithParserLogger reports render failures to logger.
func WithParserLogger(logger interfaces.Logger) ParserOption {
	return func(p *GoldmarkParser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewGoldmarkParser builds a parser whose Parse method renders with defaults.
func NewGoldmarkParser(defaults interfaces.ParseOptions, opts ...ParserOption) *GoldmarkParser {
	p := &GoldmarkParser{
		defaults: defaults,
		engine:   newGoldmarkEngine(defaults),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.convert(p.engine, markdown)
}

// ParseWithOptions renders with opts merged over the parser defaults. An
// empty extension list keeps the default extensions.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	merged := p.defaults
	if len(opts.Extensions) > 0 {
		merged.Extensions = opts.Extensions
	}
	merged.HardWraps = merged.HardWraps || opts.HardWraps
	merged.SafeMode = merged.SafeMode || opts.SafeMode
	return p.convert(newGoldmarkEngine(merged), markdown)
}

func (p *GoldmarkParser) convert(engine goldmark.Markdown, markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		logging.WithError(p.logger, err).Error("markdown.render.failed", "bytes", len(markdown))
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	p.logger.Debug("markdown.render.completed", "bytes", len(markdown), "html_bytes", buf.Len())
	return buf.Bytes(), nil
}

func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	// Safe mode leaves goldmark's default of omitting raw HTML in place.
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify, extension.TaskList}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			continue
		}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
