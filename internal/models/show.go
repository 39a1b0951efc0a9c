package models

// Show represents a TV show as displayed on a search result card
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // HTML as provided by the catalog
	Image   string `json:"image"`   // Medium poster URL, or the configured placeholder
}
