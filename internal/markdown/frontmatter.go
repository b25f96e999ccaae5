package markdown

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// SplitFrontMatter separates the metadata block at the top of source from
// the markdown body. YAML (---), TOML (+++) and JSON (;;;) blocks are
// recognised. A leading UTF-8 byte order mark is dropped. Source without a
// block yields an empty map and the whole input as body.
func SplitFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}
	source = bytes.TrimPrefix(source, utf8BOM)

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return normalizeMap(meta), body, nil
}

// Splitter adapts SplitFrontMatter to interfaces.FrontMatterSplitter.
type Splitter struct{}

var _ interfaces.FrontMatterSplitter = Splitter{}

func (Splitter) Split(source []byte) (map[string]any, []byte, error) {
	return SplitFrontMatter(source)
}

// normalizeMap rewrites nested map[any]any values, produced by some YAML
// decoders, into map[string]any so callers only deal with one map type.
func normalizeMap(in map[string]any) map[string]any {
	out := maps.Clone(in)
	if out == nil {
		return map[string]any{}
	}
	for key, value := range out {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, inner := range v {
			converted[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return converted
	case map[string]any:
		return normalizeMap(v)
	case []any:
		items := make([]any, len(v))
		for i, inner := range v {
			items[i] = normalizeValue(inner)
		}
		return items
	default:
		return value
	}
}
