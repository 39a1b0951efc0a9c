package models

// Episode represents a single episode of a show.
// Season and Number are kept as strings, matching how they are displayed.
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
	Number string `json:"number"`
}

// EpisodeList is the episode listing of one show. The owning show id travels
// with the episodes so a rendered list can always be attributed to its show.
type EpisodeList struct {
	ShowID   int       `json:"showId"`
	Episodes []Episode `json:"episodes"`
}
