package domain

import "time"

// EventType classifies a resource mutation pushed over the live feed.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event notifies subscribers that a resource record changed. Payloads are
// not carried; consumers re-fetch through the data provider.
type Event struct {
	Type     EventType `json:"type"`
	Resource string    `json:"resource"`
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
}
