package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ShowSearchResult is one element of the catalog's search/shows response
type ShowSearchResult struct {
	Score float64  `json:"score"`
	Show  *APIShow `json:"show"`
}

// APIShow is the show object nested in a search result
type APIShow struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Summary *string   `json:"summary"` // null for shows without a synopsis
	Image   *APIImage `json:"image"`   // null for shows without a poster
}

// APIImage holds the poster URLs of a show
type APIImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// APIEpisode is an episode object as returned by the catalog
type APIEpisode struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Season FlexString `json:"season"`
	Number FlexString `json:"number"`
}

// EpisodeResult is one element of the shows/{id}/episodes response.
// Both the wrapped form {"episode": {...}} and a bare episode object are accepted.
type EpisodeResult struct {
	Episode *APIEpisode
}

// UnmarshalJSON decodes either a wrapped or a bare episode object.
func (r *EpisodeResult) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Episode *APIEpisode `json:"episode"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Episode != nil {
		r.Episode = wrapped.Episode
		return nil
	}

	var bare APIEpisode
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	if bare == (APIEpisode{}) {
		r.Episode = nil
		return nil
	}
	r.Episode = &bare
	return nil
}

// FlexString accepts a JSON string, number or null and keeps its textual form.
// The catalog sends season/number as integers, and as null for specials.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		if i, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
			*s = FlexString(strconv.FormatInt(i, 10))
			return nil
		}
		*s = FlexString(num.String())
	}
	return nil
}
