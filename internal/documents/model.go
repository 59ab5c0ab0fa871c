// Package documents implements the in-memory document collection backing the
// dashboard: listing, retrieval, upload, and deletion.
package documents

import "time"

// State is the ingestion state of an uploaded document.
type State string

const (
	StateQueued     State = "queued"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Valid reports whether s is a known ingestion state.
func (s State) Valid() bool {
	switch s {
	case StateQueued, StateProcessing, StateCompleted, StateFailed:
		return true
	}
	return false
}

// Document is one stored document.
type Document struct {
	ID           string
	Title        string
	Content      string
	LastModified time.Time
	CreatedBy    string
	State        State
}

// Clone returns an independent copy of d.
func (d *Document) Clone() *Document {
	c := *d
	return &c
}
