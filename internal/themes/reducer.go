package themes

import "fmt"

// ActionKind distinguishes reducer actions.
type ActionKind int

const (
	ActionToggle ActionKind = iota
	ActionSelect
)

// Action is an input to Reduce.
type Action struct {
	Kind ActionKind
	// Name is the palette to switch to for ActionSelect.
	Name Name
}

// Toggle flips between the two palettes.
func Toggle() Action { return Action{Kind: ActionToggle} }

// Select switches to name.
func Select(name Name) Action { return Action{Kind: ActionSelect, Name: name} }

// Reduce computes the next theme from the current one. It is pure: callers
// own the state and decide when to Apply the result. Toggling from red gives
// blue and from anything else gives red. Selecting an unknown palette keeps
// the current theme.
func Reduce(current Name, action Action) Name {
	switch action.Kind {
	case ActionToggle:
		if current == Red {
			return Blue
		}
		return Red
	case ActionSelect:
		if _, ok := palettes[action.Name]; ok {
			return action.Name
		}
	}
	return current
}

// Variable is one CSS custom property.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Variables lists the custom properties a palette sets, in declaration order.
func (p Palette) Variables() []Variable {
	return []Variable{
		{"--theme-primary-400", p.Primary400},
		{"--theme-primary-500", p.Primary500},
		{"--theme-primary-600", p.Primary600},
		{"--theme-accent-400", p.Accent400},
		{"--theme-accent-500", p.Accent500},
		{"--theme-glow", p.Glow},
		{"--theme-glow-hover", p.GlowHover},
		{"--theme-border", p.Border},
		{"--theme-border-hover", p.BorderHover},
		{"--theme-background", p.Background},
		{"--theme-scrollbar", p.Scrollbar},
		{"--theme-scrollbar-hover", p.ScrollbarHover},
		{"--theme-gradient", p.Gradient},
	}
}

// ThemeAttribute is the document attribute carrying the active theme name.
const ThemeAttribute = "data-theme"

// StyleTarget receives the visual side effects of a theme change.
type StyleTarget interface {
	SetProperty(name, value string) error
	SetAttribute(name, value string) error
}

// Apply writes every variable of the named palette and the theme attribute to
// target.
func Apply(target StyleTarget, name Name) error {
	palette, ok := palettes[name]
	if !ok {
		return fmt.Errorf("themes: unknown palette %q", name)
	}
	for _, v := range palette.Variables() {
		if err := target.SetProperty(v.Name, v.Value); err != nil {
			return fmt.Errorf("themes: set %s: %w", v.Name, err)
		}
	}
	if err := target.SetAttribute(ThemeAttribute, string(name)); err != nil {
		return fmt.Errorf("themes: set %s: %w", ThemeAttribute, err)
	}
	return nil
}

// State describes an active theme for clients that apply it themselves.
type State struct {
	Theme     Name       `json:"theme" yaml:"theme"`
	Label     string     `json:"label" yaml:"label"`
	Variables []Variable `json:"variables" yaml:"variables"`
	Classes   ClassSet   `json:"classes" yaml:"classes"`
}

// Describe returns the State for name.
func Describe(name Name) (State, error) {
	palette, ok := palettes[name]
	if !ok {
		return State{}, fmt.Errorf("themes: unknown palette %q", name)
	}
	return State{
		Theme:     name,
		Label:     palette.Label,
		Variables: palette.Variables(),
		Classes:   Classes(name),
	}, nil
}
