package layout

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	siteName           = "PopX"
	defaultDescription = "Create your PopX account or sign in to your dashboard."
)

// PageMeta contains the metadata rendered into the document head
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string

	// Open Graph
	OGType        string
	OGTitle       string
	OGDescription string
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	SiteURL string
}

// NewPageMeta creates a PageMeta with site-wide defaults
func NewPageMeta(c echo.Context, siteURL string) PageMeta {
	canonicalURL := BuildAbsoluteURL(siteURL, c.Request().URL.Path)

	return PageMeta{
		Title:        siteName,
		Description:  defaultDescription,
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       siteName,
		OGDescription: defaultDescription,
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		SiteURL: siteURL,
	}
}

// WithTitle sets a page title suffixed with the site name
func (pm PageMeta) WithTitle(title string) PageMeta {
	pm.Title = title + " - " + siteName
	pm.OGTitle = title
	return pm
}

// BuildAbsoluteURL joins siteURL and path, leaving absolute paths untouched
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}
