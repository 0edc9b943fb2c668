package webserver

import (
	"net/http"

	"github.com/malonaz/urlreader/internal/session"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	locale := s.locale(w, r)
	s.render(w, &PageData{
		Page:          pageHome,
		Title:         locale.T("nav.home"),
		Locale:        locale,
		SwitchLangURL: switchLangURL(r, locale),
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	locale := s.locale(w, r)

	home := &session.Home{URL: r.FormValue("url")}
	home.Parse(r.Context(), s.backend)

	data := &PageData{
		Page:          pageHome,
		Title:         locale.T("nav.home"),
		Locale:        locale,
		SwitchLangURL: switchLangURL(r, locale),
		URL:           home.URL,
	}
	switch home.State {
	case session.HomeResult:
		data.Result = home.Result
	case session.HomeError:
		data.Error = locale.T("parse.error", home.Err)
	}
	s.render(w, data)
}
