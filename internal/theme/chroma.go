package theme

import (
	"fmt"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// FromChroma converts the named chroma style into a Theme. Rules are emitted
// in token type order so the same style always yields an identical Theme.
func FromChroma(name string) (Theme, error) {
	style, ok := styles.Registry[name]
	if !ok || style == nil {
		return Theme{}, fmt.Errorf("chroma style %q: %w", name, ErrUnknownStyle)
	}

	bg := style.Get(chroma.Background)
	plain := Style{
		Color:      colour(bg.Colour),
		Background: colour(bg.Background),
	}

	types := make([]chroma.TokenType, 0, len(chroma.StandardTypes))
	for tt := range chroma.StandardTypes {
		if tt == chroma.Background {
			continue
		}
		types = append(types, tt)
	}
	slices.Sort(types)

	t := Theme{Name: style.Name, Plain: plain}
	for _, tt := range types {
		entry := style.Get(tt)
		s := Style{
			Color:     colour(entry.Colour),
			Bold:      entry.Bold == chroma.Yes,
			Italic:    entry.Italic == chroma.Yes,
			Underline: entry.Underline == chroma.Yes,
		}
		if b := colour(entry.Background); b != plain.Background {
			s.Background = b
		}
		if s.Color == plain.Color {
			s.Color = ""
		}
		if s.IsZero() {
			continue
		}
		t.Rules = append(t.Rules, Rule{Types: []string{tt.String()}, Style: s})
	}
	return t, nil
}

func colour(c chroma.Colour) string {
	if !c.IsSet() {
		return ""
	}
	return c.String()
}

func cloneTheme(t Theme) Theme {
	if t.Rules == nil {
		return t
	}
	rules := make([]Rule, len(t.Rules))
	for i, r := range t.Rules {
		rules[i] = Rule{Types: slices.Clone(r.Types), Style: r.Style}
	}
	t.Rules = rules
	return t
}
