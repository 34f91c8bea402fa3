// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain value types with no
// behaviour attached beyond what the encoding packages need.
package model

import "time"

// Snippet represents a stored code snippet.
// The `json:"..."` struct tags control how the encoding/json package
// serializes each field, so the wire names stay stable even if the Go
// field names change.
//
// ID is assigned by the storage layer on insert and is opaque to every
// other component — callers pass it around as a string and never inspect
// its structure. CreatedAt is likewise set server-side at insert time.
// Neither field is ever accepted from a client.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}
