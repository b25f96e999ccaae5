package interfaces

// MarkdownParser converts a post body into HTML.
type MarkdownParser interface {
	// Parse renders with the parser defaults.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions renders with per-call overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions overrides rendering behaviour for a single call. Zero values
// keep the parser defaults.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// FrontMatterSplitter separates a metadata block from the markdown body.
// Documents without a recognised block return an empty map and the full input
// as body.
type FrontMatterSplitter interface {
	Split(source []byte) (map[string]any, []byte, error)
}
