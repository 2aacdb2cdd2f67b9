package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, siteTitle string) string {
	if siteTitle == "" {
		siteTitle = "curlylint"
	}
	if title != "" && title != siteTitle {
		return title + " | " + siteTitle
	}
	return siteTitle
}
