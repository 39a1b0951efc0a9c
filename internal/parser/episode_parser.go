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

// EpisodeParser decodes shows/{id}/episodes responses into Episode records
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser instance
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes the JSON array and maps every element field-for-field, in the catalog's order.
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var results []models.EpisodeResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		return nil, &apperrors.ErrInvalidPayload{Resource: "episode", Reason: "decode episode list", Err: err}
	}

	for i, result := range results {
		if result.Episode == nil {
			return nil, &apperrors.ErrInvalidPayload{Resource: "episode", Reason: fmt.Sprintf("element %d has no episode object", i)}
		}
		if result.Episode.ID <= 0 {
			return nil, &apperrors.ErrInvalidPayload{Resource: "episode", Reason: fmt.Sprintf("element %d has invalid id %d", i, result.Episode.ID)}
		}
	}

	episodes := lo.Map(results, func(result models.EpisodeResult, _ int) models.Episode {
		ep := result.Episode
		return models.Episode{
			ID:     ep.ID,
			Name:   ep.Name,
			Season: string(ep.Season),
			Number: string(ep.Number),
		}
	})

	logger.Debug().Int("total_episodes", len(episodes)).Msg("Parsed episode list")
	return episodes, nil
}
