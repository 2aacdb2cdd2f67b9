package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/curlylint/site/internal/view"
)

const (
	preferenceSessionName = "preferences"
	themeKey              = "theme"
)

// ThemeFromSession returns the theme the viewer picked explicitly, "light"
// or "dark", or "" when the browser preference applies.
func ThemeFromSession(c echo.Context) string {
	sess, err := session.Get(preferenceSessionName, c)
	if err != nil {
		return ""
	}
	switch v, _ := sess.Values[themeKey].(string); v {
	case "light", "dark":
		return v
	default:
		return ""
	}
}

// ThemePost stores the viewer's explicit theme choice. htmx requests get an
// HX-Trigger so the page remounts its snippets; plain form posts are
// redirected back with a flash message.
func ThemePost(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid theme")
	}
	if err := c.Validate(&req); err != nil {
		if c.Request().Header.Get("HX-Request") == "true" {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid theme")
		}
		view.SetFlashError(c, "Unknown theme.")
		return c.Redirect(http.StatusSeeOther, backTo(c))
	}

	sess, err := session.Get(preferenceSessionName, c)
	if err != nil {
		return err
	}
	value := req.Theme
	if value == "system" {
		value = ""
		delete(sess.Values, themeKey)
	} else {
		sess.Values[themeKey] = value
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	if c.Request().Header.Get("HX-Request") == "true" {
		trigger, err := json.Marshal(map[string]map[string]string{"theme-set": {"value": value}})
		if err != nil {
			return err
		}
		c.Response().Header().Set("HX-Trigger", string(trigger))
		return c.NoContent(http.StatusNoContent)
	}

	if value == "" {
		view.SetFlashSuccess(c, "Following your system theme.")
	} else {
		view.SetFlashSuccess(c, "Switched to the "+value+" theme.")
	}
	return c.Redirect(http.StatusSeeOther, backTo(c))
}

// backTo returns the local page the request came from, or the home page.
func backTo(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	if u, err := c.Request().URL.Parse(ref); err == nil && u.Host == c.Request().Host {
		return u.RequestURI()
	}
	return "/"
}
