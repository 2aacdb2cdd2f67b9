package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_CSS(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{name: "empty", style: Style{}, want: ""},
		{name: "color only", style: Style{Color: "#ff0000"}, want: "color:#ff0000"},
		{
			name:  "everything",
			style: Style{Color: "#fff", Background: "#000", Bold: true, Italic: true, Underline: true},
			want:  "color:#fff;background-color:#000;font-weight:bold;font-style:italic;text-decoration:underline",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.CSS())
		})
	}
}

func TestStyle_Merge(t *testing.T) {
	base := Style{Color: "#111", Italic: true}
	got := base.Merge(Style{Color: "#222", Bold: true})
	assert.Equal(t, Style{Color: "#222", Bold: true, Italic: true}, got)
	assert.Equal(t, Style{Color: "#111", Italic: true}, base)
}

func TestTheme_StyleFor(t *testing.T) {
	th := Theme{
		Name: "t",
		Rules: []Rule{
			{Types: []string{"Name"}, Style: Style{Color: "#111"}},
			{Types: []string{"NameTag"}, Style: Style{Color: "#222", Bold: true}},
			{Types: []string{"Comment", "CommentSingle"}, Style: Style{Italic: true}},
		},
	}

	assert.Equal(t, Style{Color: "#222", Bold: true}, th.StyleFor([]string{"Name", "NameTag"}))
	assert.Equal(t, Style{Color: "#111"}, th.StyleFor([]string{"Name", "NameAttribute"}))
	assert.Equal(t, Style{Italic: true}, th.StyleFor([]string{"Comment", "CommentSingle"}))
	assert.True(t, th.StyleFor([]string{"Text"}).IsZero())
	assert.True(t, th.StyleFor(nil).IsZero())
}

func TestTheme_StyleForFlagsAccumulate(t *testing.T) {
	th := Theme{
		Rules: []Rule{
			{Types: []string{"Keyword"}, Style: Style{Color: "#111", Bold: true}},
			{Types: []string{"KeywordConstant"}, Style: Style{Color: "#222", Italic: true}},
		},
	}

	got := th.StyleFor([]string{"Keyword", "KeywordConstant"})
	assert.Equal(t, Style{Color: "#222", Bold: true, Italic: true}, got,
		"specific color wins while the general bold flag is kept")
}

func TestTheme_IsZero(t *testing.T) {
	assert.True(t, Theme{}.IsZero())
	assert.False(t, Theme{Name: "x"}.IsZero())
	assert.False(t, Theme{Rules: []Rule{{Types: []string{"Name"}}}}.IsZero())
}
