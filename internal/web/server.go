package web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/samber/mo"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// ErrorReporter receives lookup failures that are not the user's fault
type ErrorReporter interface {
	Capture(err error, tags map[string]string)
}

// Server serves the search page, its fragments and the JSON API
type Server struct {
	client   client.Client
	logger   zerolog.Logger
	reporter ErrorReporter
}

// NewServer creates a web server backed by c. reporter may be nil.
func NewServer(c client.Client, reporter ErrorReporter) *Server {
	return &Server{
		client:   c,
		logger:   config.GetLogger(),
		reporter: reporter,
	}
}

// Router returns the HTTP handler with every route and middleware installed
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RequestIDHandler("request_id", "Request-Id"))
	r.Use(hlog.RemoteAddrHandler("remote_ip"))
	r.Use(hlog.UserAgentHandler("user_agent"))
	r.Use(hlog.AccessHandler(accessLogFn))

	r.Get("/", s.handlePage)

	r.Route("/fragments/shows", func(r chi.Router) {
		r.Get("/", s.handleShowsFragment)
		r.Get("/{id}/episodes", s.handleEpisodesFragment)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/search", s.handleAPISearch)
		r.Get("/shows/{id}/episodes", s.handleAPIEpisodes)
	})

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	return r
}

// searchShows runs a show search and records its failure, if any
func (s *Server) searchShows(r *http.Request, view, term string) mo.Result[[]models.Show] {
	hlog.FromRequest(r).Debug().Str("term", term).Str("view", view).Msg("Searching shows")

	res := mo.TupleToResult(s.client.SearchShows(r.Context(), term))
	if res.IsError() {
		s.report(r, view, res.Error())
	}
	return res
}

// getEpisodes runs an episode lookup and records its failure, if any
func (s *Server) getEpisodes(r *http.Request, view string, showID int) mo.Result[*models.EpisodeList] {
	hlog.FromRequest(r).Debug().Int("show_id", showID).Str("view", view).Msg("Fetching episodes")

	var res mo.Result[*models.EpisodeList]
	if showID <= 0 {
		res = mo.Err[*models.EpisodeList](errInvalidShowID)
	} else {
		res = mo.TupleToResult(s.client.GetEpisodes(r.Context(), showID))
	}
	if res.IsError() {
		s.report(r, view, res.Error())
	}
	return res
}

// report logs a failed lookup and forwards server-side failures to the error reporter.
// Client mistakes and requests abandoned by the browser are only logged.
func (s *Server) report(r *http.Request, view string, err error) {
	logger := hlog.FromRequest(r)
	status := statusFor(err)

	if status < http.StatusInternalServerError || errors.Is(err, context.Canceled) {
		logger.Debug().Err(err).Str("view", view).Int("status", status).Msg("Lookup failed")
		return
	}

	logger.Error().Err(err).Str("view", view).Int("status", status).Msg("Lookup failed")
	if s.reporter != nil {
		requestID, _ := hlog.IDFromRequest(r)
		s.reporter.Capture(err, map[string]string{
			"view":       view,
			"path":       r.URL.Path,
			"request_id": requestID.String(),
		})
	}
}

// parseShowID reads the {id} URL parameter. Anything but a positive integer yields 0.
func parseShowID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func countRender(view, outcome string) {
	metrics.PageRendersTotal.WithLabelValues(view, outcome).Inc()
}
