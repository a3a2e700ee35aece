package auth

import (
	"net/url"
	"strings"
)

// RedirectSanitizer validates post-login callback URLs so a crafted
// callbackUrl parameter cannot turn the login form into an open redirect.
type RedirectSanitizer struct {
	webAppURL  string
	websiteURL string
}

func NewRedirectSanitizer(webAppURL, websiteURL string) *RedirectSanitizer {
	return &RedirectSanitizer{
		webAppURL:  strings.TrimSuffix(webAppURL, "/"),
		websiteURL: strings.TrimSuffix(websiteURL, "/"),
	}
}

// SafeRedirectURL resolves raw against the web-app origin and returns it
// only when it stays on the web-app or website origin. Anything else falls
// back to the web-app root.
func (s *RedirectSanitizer) SafeRedirectURL(raw string) string {
	if raw == "" {
		return s.webAppURL + "/"
	}

	// Relative paths get resolved against the web app. Leading slashes are
	// collapsed so a protocol-relative //host cannot escape the origin.
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = s.webAppURL + "/" + strings.TrimLeft(raw, "/")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return s.webAppURL + "/"
	}

	if s.sameOrigin(u, s.webAppURL) || s.sameOrigin(u, s.websiteURL) {
		return u.String()
	}

	return s.webAppURL + "/"
}

func (s *RedirectSanitizer) sameOrigin(u *url.URL, origin string) bool {
	o, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Scheme == o.Scheme && u.Host == o.Host
}
