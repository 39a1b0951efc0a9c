package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/Belphemur/ShowSearch/internal/httpjson"
)

const defaultRequestTimeout = 30 * time.Second

// Render views, used as the view label of page_renders_total
const (
	viewPage             = "page"
	viewShowsFragment    = "shows_fragment"
	viewEpisodesFragment = "episodes_fragment"
	viewAPISearch        = "api_search"
	viewAPIEpisodes      = "api_episodes"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePage renders the full page. ?q= runs a search and &show= also opens that
// show's episodes, which is how the page works without script.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := pageView{Term: query.Get("q")}
	status := http.StatusOK

	if query.Has("q") {
		res := s.searchShows(r, viewPage, view.Term)
		view.Shows = newShowsView(view.Term, res)
		if res.IsError() {
			status = statusFor(res.Error())
		}
	}

	if query.Has("show") {
		showID := parseShowID(query.Get("show"))
		res := s.getEpisodes(r, viewPage, showID)
		view.Episodes = newEpisodesView(showID, res)
		if res.IsError() {
			status = statusFor(res.Error())
		}
	}

	countRender(viewPage, pageOutcome(view))
	if err := render(w, status, "page", view); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to render page")
	}
}

// handleShowsFragment renders the inner markup of #showsList for ?q=
func (s *Server) handleShowsFragment(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	res := s.searchShows(r, viewShowsFragment, term)
	view := newShowsView(term, res)

	status := http.StatusOK
	if res.IsError() {
		status = statusFor(res.Error())
	}

	countRender(viewShowsFragment, view.outcome())
	if err := render(w, status, "shows", view); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to render shows fragment")
	}
}

// handleEpisodesFragment renders the whole #episodesArea section for one show
func (s *Server) handleEpisodesFragment(w http.ResponseWriter, r *http.Request) {
	showID := parseShowID(chi.URLParam(r, "id"))
	res := s.getEpisodes(r, viewEpisodesFragment, showID)
	view := newEpisodesView(showID, res)

	status := http.StatusOK
	if res.IsError() {
		status = statusFor(res.Error())
	}

	countRender(viewEpisodesFragment, view.outcome())
	if err := render(w, status, "episodes", view); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to render episodes fragment")
	}
}

// pageOutcome is error when any part of the page failed, empty when nothing was shown
func pageOutcome(v pageView) string {
	switch {
	case v.Shows.Err != "" || v.Episodes.Err != "":
		return outcomeError
	case len(v.Shows.Shows) == 0 && len(v.Episodes.Episodes) == 0:
		return outcomeEmpty
	default:
		return outcomeOK
	}
}

func accessLogFn(r *http.Request, status, size int, duration time.Duration) {
	logger := hlog.FromRequest(r)
	logger.Info().
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("http")
}
