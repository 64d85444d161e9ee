package models

// Health is the payload of the liveness endpoint.
type Health struct {
	// Timestamp is the server time in RFC 3339 format.
	Timestamp string `json:"timestamp"`

	// Uptime is the number of seconds since the server started.
	Uptime float64 `json:"uptime"`

	// Version is the running server version.
	Version string `json:"version,omitempty"`
}
