package testutil

import (
	"encoding/json"
)

// ShowFixture describes one element of a generated search/shows payload.
// A nil Image produces "image": null; a nil Summary produces "summary": null.
type ShowFixture struct {
	ID      int
	Name    string
	Summary *string
	Image   *string
}

// EpisodeFixture describes one element of a generated episode payload
type EpisodeFixture struct {
	ID     int
	Name   string
	Season string
	Number string
}

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// GenerateShowSearchJSON builds a catalog search/shows response body
func GenerateShowSearchJSON(shows ...ShowFixture) string {
	results := make([]map[string]any, 0, len(shows))
	for i, s := range shows {
		show := map[string]any{
			"id":      s.ID,
			"name":    s.Name,
			"summary": nil,
			"image":   nil,
		}
		if s.Summary != nil {
			show["summary"] = *s.Summary
		}
		if s.Image != nil {
			show["image"] = map[string]string{"medium": *s.Image, "original": *s.Image}
		}
		results = append(results, map[string]any{
			"score": 1.0 - float64(i)*0.1,
			"show":  show,
		})
	}
	return mustMarshal(results)
}

// GenerateWrappedEpisodesJSON builds an episode list in the {"episode": {...}} form
func GenerateWrappedEpisodesJSON(episodes ...EpisodeFixture) string {
	results := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		results = append(results, map[string]any{
			"episode": map[string]any{
				"id":     e.ID,
				"name":   e.Name,
				"season": e.Season,
				"number": e.Number,
			},
		})
	}
	return mustMarshal(results)
}

// GenerateBareEpisodesJSON builds an episode list the way the live catalog sends it:
// bare objects with numeric season and number
func GenerateBareEpisodesJSON(episodes ...EpisodeFixture) string {
	results := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		results = append(results, map[string]any{
			"id":      e.ID,
			"name":    e.Name,
			"season":  json.RawMessage(e.Season),
			"number":  json.RawMessage(e.Number),
			"airdate": "2020-01-01",
		})
	}
	return mustMarshal(results)
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
