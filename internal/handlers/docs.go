package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/web/src/templates/layouts"
	"github.com/curlylint/site/web/src/templates/pages"
)

// GettingStartedGet renders the introduction page.
func (h *SiteHandler) GettingStartedGet(c echo.Context) error {
	s := h.sites.Get()
	content := pages.Doc("Getting started", s.Docs.GettingStarted)
	return c.Render(http.StatusOK, "", layouts.Base(h.page(c, s, "Getting started", true), content))
}

// IdeasGet renders the reference page.
func (h *SiteHandler) IdeasGet(c echo.Context) error {
	s := h.sites.Get()
	content := pages.Doc("Ideas", s.Docs.Ideas)
	return c.Render(http.StatusOK, "", layouts.Base(h.page(c, s, "Ideas", true), content))
}

// RulesGet renders the list of all rules.
func (h *SiteHandler) RulesGet(c echo.Context) error {
	s := h.sites.Get()
	return c.Render(http.StatusOK, "", layouts.Base(h.page(c, s, "All rules", true), pages.RulesIndex(s.Rules)))
}

// RuleGet renders a single rule page.
func (h *SiteHandler) RuleGet(c echo.Context) error {
	s := h.sites.Get()
	rule, err := s.Rule(c.Param("id"))
	if errors.Is(err, site.ErrRuleNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "No such rule")
	}
	if err != nil {
		return err
	}

	data := pages.RuleData{Rule: rule, Interactive: true}
	if rule.Example != nil {
		r := h.mount(s, *rule.Example)
		data.Example = &r
	}
	return c.Render(http.StatusOK, "", layouts.Base(h.page(c, s, rule.ID, true), pages.Rule(data)))
}
