package themes

import (
	"slices"
	"strings"
)

// Name identifies a colour palette.
type Name string

const (
	Blue Name = "blue"
	Red  Name = "red"
)

// DefaultName is the palette used when nothing else is configured.
const DefaultName = Red

// Palette is the set of colours a theme contributes to the page.
type Palette struct {
	Name           Name   `json:"name" yaml:"name"`
	Label          string `json:"label" yaml:"label"`
	Primary400     string `json:"primary400" yaml:"primary400"`
	Primary500     string `json:"primary500" yaml:"primary500"`
	Primary600     string `json:"primary600" yaml:"primary600"`
	Accent400      string `json:"accent400" yaml:"accent400"`
	Accent500      string `json:"accent500" yaml:"accent500"`
	Glow           string `json:"glow" yaml:"glow"`
	GlowHover      string `json:"glowHover" yaml:"glowHover"`
	Border         string `json:"border" yaml:"border"`
	BorderHover    string `json:"borderHover" yaml:"borderHover"`
	Background     string `json:"background" yaml:"background"`
	Scrollbar      string `json:"scrollbar" yaml:"scrollbar"`
	ScrollbarHover string `json:"scrollbarHover" yaml:"scrollbarHover"`
	Gradient       string `json:"gradient" yaml:"gradient"`
}

// ClassSet maps visual roles to Tailwind utility classes.
type ClassSet struct {
	Primary         string `json:"primary" yaml:"primary"`
	PrimaryHover    string `json:"primaryHover" yaml:"primaryHover"`
	PrimaryBg       string `json:"primaryBg" yaml:"primaryBg"`
	PrimaryBgHover  string `json:"primaryBgHover" yaml:"primaryBgHover"`
	PrimaryBorder   string `json:"primaryBorder" yaml:"primaryBorder"`
	PrimaryBgSubtle string `json:"primaryBgSubtle" yaml:"primaryBgSubtle"`
	Accent          string `json:"accent" yaml:"accent"`
	AccentHover     string `json:"accentHover" yaml:"accentHover"`
	Floating        string `json:"floating" yaml:"floating"`
}

var palettes = map[Name]Palette{
	Blue: {
		Name:           Blue,
		Label:          "Blue Cyber",
		Primary400:     "#22d3ee",
		Primary500:     "#06b6d4",
		Primary600:     "#0891b2",
		Accent400:      "#22d3ee",
		Accent500:      "#06b6d4",
		Glow:           "rgba(6, 182, 212, 0.4)",
		GlowHover:      "rgba(6, 182, 212, 0.6)",
		Border:         "rgba(6, 182, 212, 0.4)",
		BorderHover:    "rgba(6, 182, 212, 0.6)",
		Background:     "rgba(6, 182, 212, 0.1)",
		Scrollbar:      "rgba(6, 182, 212, 0.5)",
		ScrollbarHover: "rgba(6, 182, 212, 0.7)",
		Gradient:       "linear-gradient(45deg, #22d3ee, #06b6d4, #3b82f6)",
	},
	Red: {
		Name:           Red,
		Label:          "Red Danger",
		Primary400:     "#f87171",
		Primary500:     "#ef4444",
		Primary600:     "#dc2626",
		Accent400:      "#f87171",
		Accent500:      "#ef4444",
		Glow:           "rgba(239, 68, 68, 0.4)",
		GlowHover:      "rgba(239, 68, 68, 0.6)",
		Border:         "rgba(239, 68, 68, 0.4)",
		BorderHover:    "rgba(239, 68, 68, 0.6)",
		Background:     "rgba(239, 68, 68, 0.1)",
		Scrollbar:      "rgba(239, 68, 68, 0.5)",
		ScrollbarHover: "rgba(239, 68, 68, 0.7)",
		Gradient:       "linear-gradient(45deg, #ef4444, #dc2626, #b91c1c)",
	},
}

// tailwindColour is the Tailwind colour family behind each palette.
var tailwindColour = map[Name]string{
	Blue: "cyan",
	Red:  "red",
}

// Names lists the known palettes in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse resolves a palette name without regard to case or surrounding space.
func Parse(value string) (Name, bool) {
	name := Name(strings.ToLower(strings.TrimSpace(value)))
	_, ok := palettes[name]
	return name, ok
}

// Lookup returns the palette registered under name.
func Lookup(name Name) (Palette, bool) {
	palette, ok := palettes[name]
	return palette, ok
}

// Classes returns the Tailwind classes for name, falling back to the default
// palette for unknown names.
func Classes(name Name) ClassSet {
	colour, ok := tailwindColour[name]
	if !ok {
		colour = tailwindColour[DefaultName]
	}
	return ClassSet{
		Primary:         "text-" + colour + "-400",
		PrimaryHover:    "hover:text-" + colour + "-300",
		PrimaryBg:       "bg-" + colour + "-500",
		PrimaryBgHover:  "hover:bg-" + colour + "-400",
		PrimaryBorder:   "border-" + colour + "-500/20",
		PrimaryBgSubtle: "bg-" + colour + "-500/10",
		Accent:          "text-" + colour + "-400",
		AccentHover:     "hover:text-" + colour + "-400",
		Floating:        "text-" + colour + "-500/30",
	}
}
