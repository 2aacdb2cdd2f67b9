// Package export writes the site as static files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	cmp "maragu.dev/gomponents"

	"github.com/curlylint/site/internal/rendering"
	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/storage"
	"github.com/curlylint/site/web"
	"github.com/curlylint/site/web/src/templates/layouts"
	"github.com/curlylint/site/web/src/templates/pages"
)

// Exporter renders every page once, with the theme known up front, so no
// client-side remount is needed.
type Exporter struct {
	store     storage.Store
	renderer  rendering.Renderer
	tokenizer snippet.Tokenizer
	dark      bool
	seq       int
}

// New creates an Exporter writing to store.
func New(store storage.Store, tokenizer snippet.Tokenizer, dark bool) *Exporter {
	return &Exporter{
		store:     store,
		renderer:  rendering.NewUniversalRenderer(),
		tokenizer: tokenizer,
		dark:      dark,
	}
}

// Export writes all pages and returns their paths in write order.
func (x *Exporter) Export(ctx context.Context, s *site.Site) ([]string, error) {
	x.seq = 0
	var written []string
	write := func(pagePath, title string, sidebar bool, content cmp.Node) error {
		file := strings.TrimPrefix(path.Join(pagePath, "index.html"), "/")
		page := layouts.Page{Title: title, Site: s, Path: pagePath, Sidebar: sidebar, Static: true}
		if err := x.save(ctx, file, layouts.Base(page, content)); err != nil {
			return err
		}
		written = append(written, file)
		return nil
	}

	home := pages.HomeData{Site: s, Install: x.render(s, s.Install)}
	for _, ex := range s.Examples {
		home.Examples = append(home.Examples, pages.LabeledSnippet{Label: ex.Label, Rendering: x.render(s, ex)})
	}
	if err := write("/", s.Tagline, false, pages.Home(home)); err != nil {
		return written, err
	}
	if err := write(site.GettingStartedPath, "Getting started", true, pages.Doc("Getting started", s.Docs.GettingStarted)); err != nil {
		return written, err
	}
	if err := write(site.IdeasPath, "Ideas", true, pages.Doc("Ideas", s.Docs.Ideas)); err != nil {
		return written, err
	}
	if err := write(site.RulesPath, "All rules", true, pages.RulesIndex(s.Rules)); err != nil {
		return written, err
	}
	for _, rule := range s.Rules {
		data := pages.RuleData{Rule: rule}
		if rule.Example != nil {
			r := x.render(s, *rule.Example)
			data.Example = &r
		}
		if err := write(site.RulePath(rule.ID), rule.ID, true, pages.Rule(data)); err != nil {
			return written, err
		}
	}

	assets, err := x.copyAssets(ctx)
	written = append(written, assets...)
	if err != nil {
		return written, err
	}

	slog.Info("Exported site", "pages", len(written)-len(assets), "assets", len(assets))
	return written, nil
}

// copyAssets copies the embedded static files next to the pages.
func (x *Exporter) copyAssets(ctx context.Context) ([]string, error) {
	var copied []string
	err := fs.WalkDir(web.FS, "static", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := web.FS.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := x.store.Save(ctx, name, f); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		copied = append(copied, name)
		return nil
	})
	return copied, err
}

func (x *Exporter) render(s *site.Site, ex site.Example) snippet.Rendering {
	x.seq++
	rd := ex.NewRenderer(x.tokenizer, s.Theme, "static-"+strconv.Itoa(x.seq))
	return rd.RenderStatic(x.dark)
}

func (x *Exporter) save(ctx context.Context, file string, component interface{}) error {
	body, err := x.renderer.RenderComponent(ctx, component)
	if err != nil {
		return fmt.Errorf("render %s: %w", file, err)
	}
	if _, err := x.store.Save(ctx, file, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// WriteRuleDocs writes the generated rule docs: one markdown page per rule,
// the rules index and the sidebar module.
func WriteRuleDocs(ctx context.Context, store storage.Store, rules []site.Rule, now time.Time) ([]string, error) {
	files := map[string]string{
		"docs/rules/all.md": site.AllRulesMarkdown(rules, now),
		"rules-sidebar.js":  site.SidebarJS(rules),
	}
	order := make([]string, 0, len(rules)+2)
	for _, r := range rules {
		name := fmt.Sprintf("docs/rules/%s.md", r.ID)
		files[name] = site.RuleMarkdown(r, now)
		order = append(order, name)
	}
	order = append(order, "rules-sidebar.js", "docs/rules/all.md")

	for _, name := range order {
		if _, err := store.Save(ctx, name, strings.NewReader(files[name])); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}
	return order, nil
}
