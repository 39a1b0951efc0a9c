package models

import (
	"encoding/json"
	"testing"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexString
		wantErr bool
	}{
		{name: "string", input: `"1"`, want: "1"},
		{name: "integer", input: `12`, want: "12"},
		{name: "float", input: `1.5`, want: "1.5"},
		{name: "null", input: `null`, want: ""},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexString
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEpisodeResult_Wrapped(t *testing.T) {
	var results []EpisodeResult
	payload := `[{"episode":{"id":10,"name":"Pilot","season":"1","number":"1"}}]`
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(results) != 1 || results[0].Episode == nil {
		t.Fatalf("Expected one wrapped episode, got %+v", results)
	}
	ep := results[0].Episode
	if ep.ID != 10 || ep.Name != "Pilot" || ep.Season != "1" || ep.Number != "1" {
		t.Errorf("Unexpected episode: %+v", ep)
	}
}

func TestEpisodeResult_Bare(t *testing.T) {
	var results []EpisodeResult
	payload := `[{"id":1,"url":"https://www.tvmaze.com/episodes/1","name":"Pilot","season":1,"number":null,"airdate":"2013-06-24"}]`
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	ep := results[0].Episode
	if ep == nil {
		t.Fatal("Expected bare episode to be decoded")
	}
	if ep.Season != "1" || ep.Number != "" {
		t.Errorf("Expected season %q and empty number, got %q/%q", "1", ep.Season, ep.Number)
	}
}

func TestEpisodeResult_Empty(t *testing.T) {
	var result EpisodeResult
	if err := json.Unmarshal([]byte(`{"unrelated":true}`), &result); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if result.Episode != nil {
		t.Errorf("Expected no episode, got %+v", result.Episode)
	}
}

func TestShowSearchResult_NullableFields(t *testing.T) {
	var results []ShowSearchResult
	payload := `[{"score":0.9,"show":{"id":1,"name":"Batman","summary":null,"image":null}}]`
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	show := results[0].Show
	if show == nil || show.ID != 1 || show.Name != "Batman" {
		t.Fatalf("Unexpected show: %+v", show)
	}
	if show.Summary != nil || show.Image != nil {
		t.Errorf("Expected nil summary and image, got %v / %v", show.Summary, show.Image)
	}
}
