package webserver

import (
	"net/http"

	"github.com/malonaz/urlreader/internal/i18n"
)

const (
	localeCookieName = "urlreader_lang"
	localeCookieAge  = 365 * 24 * 60 * 60
)

// locale resolves the page locale from ?lang=, then the cookie, then the default.
// A valid ?lang= is remembered in the cookie.
func (s *Server) locale(w http.ResponseWriter, r *http.Request) i18n.Locale {
	if locale := i18n.Locale(r.URL.Query().Get("lang")); locale.Valid() {
		http.SetCookie(w, &http.Cookie{
			Name:     localeCookieName,
			Value:    string(locale),
			Path:     "/",
			MaxAge:   localeCookieAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return locale
	}
	if cookie, err := r.Cookie(localeCookieName); err == nil {
		if locale := i18n.Locale(cookie.Value); locale.Valid() {
			return locale
		}
	}
	return s.defaultLocale
}

// switchLangURL returns the current page with the other locale.
func switchLangURL(r *http.Request, locale i18n.Locale) string {
	u := *r.URL
	query := u.Query()
	query.Set("lang", string(locale.Toggle()))
	u.RawQuery = query.Encode()
	return u.RequestURI()
}
