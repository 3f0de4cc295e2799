package models

import "time"

// Media is metadata for a binary asset attached to a species. The binary
// itself lives in external storage; only links are synchronized.
type Media struct {
	MediaID       int64      `json:"media_id"`
	SpeciesID     int64      `json:"species_id"`
	DownloadLink  string     `json:"download_link"`
	StreamingLink string     `json:"streaming_link"`
	AltText       string     `json:"alt_text"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
