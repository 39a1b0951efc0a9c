package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// ShowParser decodes search/shows responses into Show records
type ShowParser struct {
	defaultImage string
}

// NewShowParser creates a show parser that substitutes defaultImage for shows without a poster
func NewShowParser(defaultImage string) *ShowParser {
	return &ShowParser{defaultImage: defaultImage}
}

// Parse decodes the JSON array and maps every result to a Show, preserving the catalog's order.
// The whole response is rejected when one element lacks its show object or a valid id.
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var results []models.ShowSearchResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		return nil, &apperrors.ErrInvalidPayload{Resource: "show", Reason: "decode search results", Err: err}
	}

	for i, result := range results {
		if result.Show == nil {
			return nil, &apperrors.ErrInvalidPayload{Resource: "show", Reason: fmt.Sprintf("result %d has no show object", i)}
		}
		if result.Show.ID <= 0 {
			return nil, &apperrors.ErrInvalidPayload{Resource: "show", Reason: fmt.Sprintf("result %d has invalid id %d", i, result.Show.ID)}
		}
	}

	shows := lo.Map(results, func(result models.ShowSearchResult, _ int) models.Show {
		return p.toShow(result.Show)
	})

	logger.Debug().Int("total_shows", len(shows)).Msg("Parsed show search results")
	return shows, nil
}

func (p *ShowParser) toShow(s *models.APIShow) models.Show {
	show := models.Show{
		ID:    s.ID,
		Name:  s.Name,
		Image: p.defaultImage,
	}
	if s.Summary != nil {
		show.Summary = *s.Summary
	}
	if s.Image != nil && s.Image.Medium != "" {
		show.Image = s.Image.Medium
	}
	return show
}
