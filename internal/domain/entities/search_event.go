package entities

import (
	"time"
)

// SearchEvent represents a single search interaction for analytics.
type SearchEvent struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Specialty   string    `json:"specialty,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Procedures  []string  `json:"procedures,omitempty"`
	ResultCount int       `json:"result_count"`
	IsFallback  bool      `json:"is_fallback"`
	LatencyMs   int64     `json:"latency_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
