package models

// Health is the body of the liveness endpoint.
type Health struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	LatestVersion int64  `json:"latest_version"`
}
