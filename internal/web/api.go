package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Belphemur/ShowSearch/internal/httpjson"
	"github.com/Belphemur/ShowSearch/internal/models"
)

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	res := s.searchShows(r, viewAPISearch, r.URL.Query().Get("q"))
	shows, err := res.Get()
	if err != nil {
		countRender(viewAPISearch, outcomeError)
		httpjson.WriteError(w, statusFor(err), errorMessage(err))
		return
	}

	if shows == nil {
		shows = []models.Show{}
	}
	countRender(viewAPISearch, showsView{Shows: shows}.outcome())
	httpjson.Write(w, http.StatusOK, shows)
}

func (s *Server) handleAPIEpisodes(w http.ResponseWriter, r *http.Request) {
	res := s.getEpisodes(r, viewAPIEpisodes, parseShowID(chi.URLParam(r, "id")))
	list, err := res.Get()
	if err != nil {
		countRender(viewAPIEpisodes, outcomeError)
		httpjson.WriteError(w, statusFor(err), errorMessage(err))
		return
	}

	if list.Episodes == nil {
		list.Episodes = []models.Episode{}
	}
	countRender(viewAPIEpisodes, episodesView{Episodes: list.Episodes}.outcome())
	httpjson.Write(w, http.StatusOK, list)
}
