package domain

import (
	"encoding/json"
	"errors"
)

// Record is a backend resource row. The adapter treats records as opaque
// pass-through documents owned by the backend.
type Record = map[string]any

// ListResult is the normalized outcome of a list call.
type ListResult struct {
	Data  []Record `json:"data"`
	Total int      `json:"total"`
}

// ErrNotFound is raised when a well-formed 2xx envelope lacks its data
// field. Per the backend contract that still means the resource is missing,
// whatever the HTTP status said.
var ErrNotFound = errors.New("resource not found")

// DecodeRecord converts a generic record into a typed DTO via JSON tags.
func DecodeRecord(record Record, dst any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
