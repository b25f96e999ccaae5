package blogcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-folio/internal/themes"
)

const (
	listPostsMessageType    = "folio.blog.list_posts"
	showPostMessageType     = "folio.blog.show_post"
	listTagsMessageType     = "folio.blog.list_tags"
	checkContentMessageType = "folio.blog.check_content"
	toggleThemeMessageType  = "folio.themes.toggle"
	selectThemeMessageType  = "folio.themes.select"
	themeCSSMessageType     = "folio.themes.css"
)

// ListPostsCommand lists published posts. At most one of Tag, Featured and
// Recent selects the query; with none set every published post is listed.
type ListPostsCommand struct {
	// Tag restricts the listing to posts carrying the tag, ignoring case.
	Tag string `json:"tag,omitempty"`
	// Featured restricts the listing to featured posts.
	Featured bool `json:"featured,omitempty"`
	// Recent lists the newest N posts when set; zero lists none.
	Recent *int `json:"recent,omitempty"`
	// Limit caps the number of posts emitted when positive.
	Limit int `json:"limit,omitempty"`
}

// Type implements command.Message.
func (ListPostsCommand) Type() string { return listPostsMessageType }

// Validate rejects negative counts and conflicting selectors.
func (cmd ListPostsCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Recent, validation.Min(0)),
		validation.Field(&cmd.Limit, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	selectors := 0
	if strings.TrimSpace(cmd.Tag) != "" {
		selectors++
	}
	if cmd.Featured {
		selectors++
	}
	if cmd.Recent != nil {
		selectors++
	}
	if selectors > 1 {
		return validation.NewError("folio.blog.list_posts.selector_conflict", "only one of tag, featured and recent may be set")
	}
	return nil
}

// ShowPostCommand prints a single published post.
type ShowPostCommand struct {
	Slug string `json:"slug"`
	// HTML renders the markdown body alongside the raw content.
	HTML bool `json:"html,omitempty"`
	// Safe drops raw HTML from the rendered body.
	Safe bool `json:"safe,omitempty"`
}

// Type implements command.Message.
func (ShowPostCommand) Type() string { return showPostMessageType }

// Validate requires a slug without path separators.
func (cmd ShowPostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.Required, validation.By(func(value any) error {
			slug, _ := value.(string)
			if strings.TrimSpace(slug) == "" {
				return validation.NewError("folio.blog.show_post.slug_required", "slug is required")
			}
			if strings.ContainsAny(slug, `/\`) {
				return validation.NewError("folio.blog.show_post.slug_invalid", "slug must not contain path separators")
			}
			return nil
		})),
	)
}

// ListTagsCommand lists tags with their post counts, or only the distinct
// tag names when NamesOnly is set.
type ListTagsCommand struct {
	NamesOnly bool `json:"namesOnly,omitempty"`
}

// Type implements command.Message.
func (ListTagsCommand) Type() string { return listTagsMessageType }

// Validate implements command.Message validation.
func (ListTagsCommand) Validate() error { return nil }

// CheckContentCommand lints the content directory.
type CheckContentCommand struct{}

// Type implements command.Message.
func (CheckContentCommand) Type() string { return checkContentMessageType }

// Validate implements command.Message validation.
func (CheckContentCommand) Validate() error { return nil }

// ToggleThemeCommand computes the theme that follows Current. A blank Current
// is treated as no theme, which toggles to the default.
type ToggleThemeCommand struct {
	Current string `json:"current,omitempty"`
}

// Type implements command.Message.
func (ToggleThemeCommand) Type() string { return toggleThemeMessageType }

// Validate rejects unknown palette names.
func (cmd ToggleThemeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Current, validation.By(knownTheme("folio.themes.toggle.current_unknown"))),
	)
}

// SelectThemeCommand switches from Current to Name.
type SelectThemeCommand struct {
	Current string `json:"current,omitempty"`
	Name    string `json:"name"`
}

// Type implements command.Message.
func (SelectThemeCommand) Type() string { return selectThemeMessageType }

// Validate requires a known Name and rejects an unknown Current.
func (cmd SelectThemeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Current, validation.By(knownTheme("folio.themes.select.current_unknown"))),
		validation.Field(&cmd.Name, validation.Required, validation.By(knownTheme("folio.themes.select.name_unknown"))),
	)
}

// ThemeCSSCommand renders the stylesheet for Name, or for the default theme
// when Name is blank.
type ThemeCSSCommand struct {
	Name string `json:"name,omitempty"`
}

// Type implements command.Message.
func (ThemeCSSCommand) Type() string { return themeCSSMessageType }

// Validate rejects unknown palette names.
func (cmd ThemeCSSCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Name, validation.By(knownTheme("folio.themes.css.name_unknown"))),
	)
}

func knownTheme(code string) validation.RuleFunc {
	return func(value any) error {
		name, _ := value.(string)
		if strings.TrimSpace(name) == "" {
			return nil
		}
		if _, ok := themes.Parse(name); !ok {
			return validation.NewError(code, "unknown theme; expected one of "+themeList())
		}
		return nil
	}
}

func themeList() string {
	names := themes.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return strings.Join(out, ", ")
}
