package theme

import "errors"

// ErrUnknownStyle is returned when a chroma style name is not registered.
var ErrUnknownStyle = errors.New("unknown style")

// Built-in palettes used when the site does not configure a variant.
const (
	DefaultLightStyle = "github"
	DefaultDarkStyle  = "monokai"
)

// Def is a theme definition as written in site configuration. Style names a
// chroma style; otherwise the inline palette is used.
type Def struct {
	Style string `yaml:"style,omitempty"`
	Theme `yaml:",inline"`
}

// theme converts the definition. ok is false for empty definitions and for
// unknown chroma style names.
func (d *Def) theme() (Theme, bool) {
	if d == nil {
		return Theme{}, false
	}
	if d.Style != "" {
		t, err := FromChroma(d.Style)
		if err != nil {
			return Theme{}, false
		}
		if d.Name != "" {
			t.Name = d.Name
		}
		return t, true
	}
	if d.Theme.IsZero() {
		return Theme{}, false
	}
	return cloneTheme(d.Theme), true
}

// Config holds the site-level light and dark theme definitions. Either may
// be nil.
type Config struct {
	Light *Def `yaml:"light,omitempty"`
	Dark  *Def `yaml:"dark,omitempty"`
}

// Resolve picks the theme for a render. The override wins when set, then the
// configured variant matching dark, then the built-in default for that
// variant. cfg is never modified and the returned Theme shares no memory
// with it.
func Resolve(cfg Config, dark bool, override *Def) Theme {
	if t, ok := override.theme(); ok {
		return t
	}
	variant := cfg.Light
	if dark {
		variant = cfg.Dark
	}
	if t, ok := variant.theme(); ok {
		return t
	}
	return Default(dark)
}

// Default returns the built-in theme for the variant.
func Default(dark bool) Theme {
	name := DefaultLightStyle
	if dark {
		name = DefaultDarkStyle
	}
	t, err := FromChroma(name)
	if err != nil {
		return Theme{Name: name}
	}
	return t
}
