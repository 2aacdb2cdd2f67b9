package site

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlylint/site/internal/snippet"
)

const minimalYAML = `
title: demo
install:
  language: bash
  code: pip install demo
rules:
  - id: one
    type: accessibility
    description: First rule
  - id: two
    type: layout
    description: Second rule
`

func TestLoad_EmbeddedContent(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, "curlylint", s.Title)
	assert.Equal(t, "bash", s.Install.Language)
	require.Len(t, s.Examples, 3)
	for _, ex := range s.Examples {
		assert.Equal(t, "twig", ex.Language)
		require.Len(t, ex.Annotations, 1)
		assert.Equal(t, "aria_role", ex.Annotations[0].Code)
		assert.Equal(t, 1, ex.Annotations[0].Line)
	}
	require.NotNil(t, s.Theme.Light)
	require.NotNil(t, s.Theme.Dark)
	assert.Equal(t, "github", s.Theme.Light.Style)
	assert.Equal(t, "monokai", s.Theme.Dark.Style)

	indent, err := s.Rule("indent")
	require.NoError(t, err)
	require.NotNil(t, indent.Recommended)
	assert.False(t, *indent.Recommended)
	require.NotNil(t, indent.Example)
	assert.Len(t, indent.Example.Annotations, 2)
}

func TestLoad_FromFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content/site.yaml", []byte(minimalYAML), 0o644))

	s, err := Load(fs, "/content/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Title)
	assert.Len(t, s.Rules, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed yaml", yaml: "title: [unterminated"},
		{name: "missing title", yaml: "install:\n  language: bash\n  code: x\n"},
		{name: "install without code", yaml: "title: t\ninstall:\n  language: bash\n"},
		{
			name: "duplicate rule ids",
			yaml: "title: t\ninstall: {language: bash, code: x}\nrules:\n" +
				"  - {id: a, type: layout, description: d}\n" +
				"  - {id: a, type: layout, description: d}\n",
		},
		{
			name: "annotation without message",
			yaml: "title: t\ninstall: {language: bash, code: x}\nexamples:\n" +
				"  - {language: twig, code: x, annotations: [{line: 1, code: c}]}\n",
		},
		{
			name: "inline theme rule without token types",
			yaml: "title: t\ninstall: {language: bash, code: x}\ntheme:\n" +
				"  light:\n    name: paper\n    rules:\n      - {types: [], color: \"#ffffff\"}\n",
		},
		{
			name: "example theme rule without token types",
			yaml: "title: t\ninstall: {language: bash, code: x}\nexamples:\n" +
				"  - {language: twig, code: x, theme: {name: t, rules: [{color: \"#000000\"}]}}\n",
		},
		{
			name: "resource with bad url",
			yaml: "title: t\ninstall: {language: bash, code: x}\nrules:\n" +
				"  - {id: a, type: layout, description: d, resources: [{title: r, url: not a url}]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_InlineTheme(t *testing.T) {
	data := "title: t\ninstall: {language: bash, code: x}\ntheme:\n" +
		"  light:\n    name: paper\n    plain: {color: \"#111111\"}\n" +
		"    rules:\n      - {types: [NameTag, Keyword], color: \"#0000aa\", bold: true}\n"

	s, err := Parse([]byte(data))
	require.NoError(t, err)
	require.NotNil(t, s.Theme.Light)
	assert.Equal(t, "paper", s.Theme.Light.Name)
	require.Len(t, s.Theme.Light.Rules, 1)
	assert.Equal(t, []string{"NameTag", "Keyword"}, s.Theme.Light.Rules[0].Types)
	assert.True(t, s.Theme.Light.Rules[0].Style.Bold)
}

func TestSite_Rule(t *testing.T) {
	s, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	r, err := s.Rule("two")
	require.NoError(t, err)
	assert.Equal(t, "Second rule", r.Description)

	_, err = s.Rule("missing")
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestSite_Sidebar(t *testing.T) {
	s, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	nav := s.Sidebar()
	require.Len(t, nav, 3)
	assert.Equal(t, "Rules", nav[1].Label)
	assert.Equal(t, []NavItem{
		{Title: "All rules", Href: "/docs/rules"},
		{Title: "one", Href: "/docs/rules/one"},
		{Title: "two", Href: "/docs/rules/two"},
	}, nav[1].Items)
}

type stubTokenizer struct{}

func (stubTokenizer) Tokenize(text, language string) ([]snippet.TokenLine, error) {
	return []snippet.TokenLine{{{Text: text, Categories: []string{"Text"}}}}, nil
}

func TestExample_NewRenderer(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	r := s.Examples[0].NewRenderer(stubTokenizer{}, s.Theme, "ex-1")
	assert.Equal(t, "ex-1", r.ID())

	out := r.Mount()
	assert.Equal(t, snippet.MountedInitial, out.Phase)
	assert.Equal(t, "github", out.Theme.Name)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, s.Examples[0].Annotations[0].Message, out.Lines[0].Annotation)
}
