package site

// NavItem is a link in the docs sidebar.
type NavItem struct {
	Title string
	Href  string
}

// NavCategory groups sidebar links under a heading.
type NavCategory struct {
	Label     string
	Collapsed bool
	Items     []NavItem
}

// Doc page paths.
const (
	GettingStartedPath = "/docs/getting-started"
	RulesPath          = "/docs/rules"
	IdeasPath          = "/docs/reference/ideas"
)

// RulePath returns the page path for a rule.
func RulePath(id string) string {
	return RulesPath + "/" + id
}

// Sidebar builds the docs navigation.
func (s *Site) Sidebar() []NavCategory {
	rules := []NavItem{{Title: "All rules", Href: RulesPath}}
	for _, r := range s.Rules {
		rules = append(rules, NavItem{Title: r.ID, Href: RulePath(r.ID)})
	}
	return []NavCategory{
		{Label: "Introduction", Items: []NavItem{{Title: "Getting started", Href: GettingStartedPath}}},
		{Label: "Rules", Items: rules},
		{Label: "Reference", Items: []NavItem{{Title: "Ideas", Href: IdeasPath}}},
	}
}
