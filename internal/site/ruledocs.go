package site

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const editURL = "https://github.com/thibaudcolas/curlylint/edit/master/"

// TypeLabel returns the display label for the rule type, e.g. "Accessibility".
func (r Rule) TypeLabel() string {
	return cases.Title(language.English).String(strings.ReplaceAll(r.Type, "_", " "))
}

// RuleMarkdown renders the generated docs page for a rule.
func RuleMarkdown(r Rule, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("# This file is auto-generated, please do not update manually.\n")
	fmt.Fprintf(&b, "# Timestamp: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "id: %s\n", r.ID)
	fmt.Fprintf(&b, "title: %s\n", r.ID)
	fmt.Fprintf(&b, "custom_edit_url: %scurlylint/rules/%s/%s.py\n", editURL, r.ID, r.ID)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "> %s\n", r.Description)
	if len(r.Resources) > 0 {
		b.WriteString("\n## Resources\n\n")
		for _, res := range r.Resources {
			fmt.Fprintf(&b, "- [%s](%s)\n", res.Title, res.URL)
		}
	}
	return b.String()
}

// AllRulesMarkdown renders the rules index page.
func AllRulesMarkdown(rules []Rule, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("# This file is auto-generated, please do not update manually.\n")
	fmt.Fprintf(&b, "# Timestamp: %s\n", now.Format(time.RFC3339))
	b.WriteString("id: all\n")
	b.WriteString("title: All rules\n")
	fmt.Fprintf(&b, "custom_edit_url: %swebsite/build_rules.py\n", editURL)
	b.WriteString("---\n\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "- [%s](%s.md)\n", r.ID, r.ID)
	}
	return b.String()
}

// SidebarJS renders the rules sidebar module consumed by the docs build.
func SidebarJS(rules []Rule) string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = fmt.Sprintf("%q", "rules/"+r.ID)
	}
	return "module.exports = [\n    " + strings.Join(ids, ",\n    ") + "\n];\n"
}
