package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/testutil"
)

func TestEpisodeParser_Parse_Wrapped(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateWrappedEpisodesJSON(testutil.EpisodeFixture{ID: 10, Name: "Pilot", Season: "1", Number: "1"})

	episodes, err := NewEpisodeParser().Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := models.Episode{ID: 10, Name: "Pilot", Season: "1", Number: "1"}
	if len(episodes) != 1 || episodes[0] != expected {
		t.Fatalf("Expected %+v, got %+v", expected, episodes)
	}
}

func TestEpisodeParser_Parse_BarePreservesOrder(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateBareEpisodesJSON(
		testutil.EpisodeFixture{ID: 1, Name: "Pilot", Season: "1", Number: "1"},
		testutil.EpisodeFixture{ID: 2, Name: "The Fire", Season: "1", Number: "2"},
		testutil.EpisodeFixture{ID: 9, Name: "Special", Season: "2", Number: "null"},
	)

	episodes, err := NewEpisodeParser().Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []models.Episode{
		{ID: 1, Name: "Pilot", Season: "1", Number: "1"},
		{ID: 2, Name: "The Fire", Season: "1", Number: "2"},
		{ID: 9, Name: "Special", Season: "2", Number: ""},
	}
	if len(episodes) != len(expected) {
		t.Fatalf("Expected %d episodes, got %d", len(expected), len(episodes))
	}
	for i := range expected {
		if episodes[i] != expected[i] {
			t.Errorf("Episode %d: expected %+v, got %+v", i, expected[i], episodes[i])
		}
	}
}

func TestEpisodeParser_Parse_InvalidPayloads(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `[{"episode":{"id":1,`},
		{name: "element without episode", body: `[{}]`},
		{name: "negative id", body: `[{"episode":{"id":-4,"name":"x","season":"1","number":"1"}}]`},
		{name: "boolean season", body: `[{"episode":{"id":4,"name":"x","season":true,"number":"1"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEpisodeParser().Parse(strings.NewReader(tt.body))
			if !errors.Is(err, &apperrors.ErrInvalidPayload{}) {
				t.Errorf("Expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}
