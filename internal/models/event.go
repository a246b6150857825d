package models

import "encoding/json"

// Record constants for the system_health table.
const (
	// ComponentBusinessMetrics marks a record as a business-metrics entry,
	// as opposed to the infrastructure checks written by other services.
	ComponentBusinessMetrics = "business_metrics"

	// StatusHealthy is the only status this service ever writes: a failed
	// forward surfaces as an HTTP error, never as a degraded record.
	StatusHealthy = "healthy"
)

// TrackRequest is the POST /track payload.
//
// Event is decoded loosely (any JSON value) because the contract applies a
// truthiness check rather than a type check: "", 0, false and null are all
// rejected the same way as a missing field. Properties and UserID are opaque
// and carried verbatim into the outbound record.
type TrackRequest struct {
	Event      any             `json:"event"`
	Value      *float64        `json:"value,omitempty"`
	Properties json.RawMessage `json:"properties,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
	UserID     json.RawMessage `json:"userId,omitempty"`
}

// HealthRecord is the row inserted into system_health for each forwarded
// event. It is built once per request, sent once, and discarded.
type HealthRecord struct {
	Component string        `json:"component"`
	Status    string        `json:"status"`
	Message   string        `json:"message"`
	Details   RecordDetails `json:"details"`
	Metrics   RecordMetrics `json:"metrics"`
	CheckedAt string        `json:"checked_at"`
	CreatedAt string        `json:"created_at"`
}

// RecordDetails carries the inbound fields through unmodified.
type RecordDetails struct {
	Event      string          `json:"event"`
	Value      *float64        `json:"value,omitempty"`
	Properties json.RawMessage `json:"properties,omitempty"`
	UserID     json.RawMessage `json:"userId,omitempty"`
}

// RecordMetrics carries the resolved (defaulted) measurement values.
type RecordMetrics struct {
	Event     string  `json:"event"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"`
}
