// Package style holds the design tokens and the CSS generated from them.
//
// A Theme is immutable once built. Construct it once at startup with Default
// (or a customised copy) and pass it to the views explicitly.
package style

import (
	"strings"
	"sync"
)

// Colors groups the palette used by the global rules.
type Colors struct {
	Text       string
	TextHeader string
	Muted      string
	Border     string
	CodeBg     string
	CodeText   string
	CodeTitle  string
}

// Fonts lists font stacks by role.
type Fonts struct {
	Body      []string
	Header    []string
	Monospace []string
}

// Theme is the process-wide style configuration.
type Theme struct {
	Space          []string
	FontSizes      []string
	LineHeights    map[string]string
	LetterSpacings map[string]string
	Colors         Colors
	Fonts          Fonts
	Breakpoints    Breakpoints
	Badges         map[Language]Badge

	// ContentWidth and ContentMaxWidth size the layout column; TabletWidth
	// replaces ContentWidth below the tablet breakpoint.
	ContentWidth    string
	ContentMaxWidth string
	TabletWidth     string

	once      sync.Once
	globalCSS string
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the shared default theme.
func Default() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = NewTheme()
	})
	return defaultTheme
}

// NewTheme builds a fresh theme carrying the default tokens.
func NewTheme() *Theme {
	return &Theme{
		Space:     []string{"0", "0.25rem", "0.5rem", "0.75rem", "1rem", "1.25rem", "1.5rem", "2rem", "2.5rem", "3rem"},
		FontSizes: []string{"1.2rem", "1.4rem", "1.6rem", "1.8rem", "2rem", "2.4rem", "2.8rem", "3.2rem"},
		LineHeights: map[string]string{
			"solid":   "1",
			"dense":   "1.25",
			"default": "1.5",
			"loose":   "1.75",
		},
		LetterSpacings: map[string]string{
			"normal":  "normal",
			"tracked": "0.075em",
			"tight":   "-0.015em",
		},
		Colors: Colors{
			Text:       "rgba(0, 0, 0, 0.8)",
			TextHeader: "#232129",
			Muted:      "#444",
			Border:     "#ccc",
			CodeBg:     "#f5f5f5",
			CodeText:   "#333",
			CodeTitle:  "#444",
		},
		Fonts: Fonts{
			Body:      []string{"system-ui", "-apple-system", "BlinkMacSystemFont", `"Segoe UI"`, "Roboto", "Ubuntu", `"Helvetica Neue"`, "sans-serif"},
			Header:    []string{`"Roboto Slab"`, "Futura PT", "-apple-system", "BlinkMacSystemFont", "sans-serif"},
			Monospace: []string{"SFMono-Regular", "Menlo", "Monaco", "Consolas", `"Liberation Mono"`, `"Courier New"`, "monospace"},
		},
		Breakpoints:     DefaultBreakpoints(),
		Badges:          defaultBadges(),
		ContentWidth:    "60%",
		ContentMaxWidth: "728px",
		TabletWidth:     "80%",
	}
}

// Badge returns the badge style for lang. Unknown languages get no badge.
func (t *Theme) Badge(lang Language) (Badge, bool) {
	b, ok := t.Badges[lang]
	return b, ok
}

// BadgeForTag resolves a fenced-code info string such as "js" or "json5".
func (t *Theme) BadgeForTag(tag string) (Language, Badge, bool) {
	lang, ok := ParseLanguage(tag)
	if !ok {
		return LangUnknown, Badge{}, false
	}
	b, ok := t.Badge(lang)
	return lang, b, ok
}

func stack(fonts []string) string {
	return strings.Join(fonts, ", ")
}

func (t *Theme) space(i int) string {
	if i < 0 || i >= len(t.Space) {
		return "0"
	}
	return t.Space[i]
}

func (t *Theme) fontSize(i int) string {
	if i < 0 || i >= len(t.FontSizes) {
		return "inherit"
	}
	return t.FontSizes[i]
}
