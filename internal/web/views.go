package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/samber/mo"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	// Catalog summaries are HTML and are shown as such
	"rawHTML": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(templateFS, "templates/*.gohtml"))

// Render outcomes, used as the outcome label of page_renders_total
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// errInvalidShowID is returned for a show id that is not a positive integer
var errInvalidShowID = errors.New("invalid show id")

// showsView is the data of the "shows" template
type showsView struct {
	Term     string
	Searched bool
	Shows    []models.Show
	Err      string
}

// episodesView is the data of the "episodes" template.
// ShowID is always the show the episodes belong to.
type episodesView struct {
	ShowID   int
	Visible  bool
	Episodes []models.Episode
	Err      string
}

// pageView is the data of the full page
type pageView struct {
	Term     string
	Shows    showsView
	Episodes episodesView
}

func newShowsView(term string, res mo.Result[[]models.Show]) showsView {
	if res.IsError() {
		return showsView{Term: term, Searched: true, Err: errorMessage(res.Error())}
	}
	return showsView{Term: term, Searched: true, Shows: res.MustGet()}
}

func newEpisodesView(showID int, res mo.Result[*models.EpisodeList]) episodesView {
	if res.IsError() {
		return episodesView{ShowID: showID, Visible: true, Err: errorMessage(res.Error())}
	}
	list := res.MustGet()
	return episodesView{ShowID: list.ShowID, Visible: true, Episodes: list.Episodes}
}

func (v showsView) outcome() string {
	switch {
	case v.Err != "":
		return outcomeError
	case len(v.Shows) == 0:
		return outcomeEmpty
	default:
		return outcomeOK
	}
}

func (v episodesView) outcome() string {
	switch {
	case v.Err != "":
		return outcomeError
	case len(v.Episodes) == 0:
		return outcomeEmpty
	default:
		return outcomeOK
	}
}

// statusFor maps a lookup error to the HTTP status returned to the browser
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errInvalidShowID):
		return http.StatusBadRequest
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// errorMessage is the user-facing text for a lookup error
func errorMessage(err error) string {
	switch statusFor(err) {
	case http.StatusBadRequest:
		return "Invalid show id."
	case http.StatusNotFound:
		return "Show not found."
	case http.StatusGatewayTimeout:
		return "The TV catalog took too long to answer. Please try again."
	default:
		return "Request failed: the TV catalog could not be reached. Please try again."
	}
}

// render executes the named template into a buffer so that a template failure
// never leaves a half-written response.
func render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
