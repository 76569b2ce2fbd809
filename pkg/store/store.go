// Package store keeps a history of rejected validation runs.
//
// Every non-empty report the pipeline produces is saved as a [Record] under a
// fresh run id, so the exact diagnostics replayed to a plan producer can be
// looked up later. Backends:
//   - [FileStore]: <dir>/<run id>/validation_error.txt plus report.json
//   - [MongoStore]: one document per run in a MongoDB collection
//   - [NullStore]: history disabled
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// Record is one persisted validation run.
type Record struct {
	RunID     string    `json:"run_id" bson:"_id"`
	Kind      string    `json:"kind" bson:"kind"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Accepted  bool      `json:"accepted" bson:"accepted"`
	InputHash string    `json:"input_hash,omitempty" bson:"input_hash,omitempty"`
	Issues    []string  `json:"issues" bson:"issues"`
	// Text is the rendered report, exactly as shown to the producer.
	Text string `json:"text" bson:"text"`
}

// Store persists records.
type Store interface {
	// Save writes rec. Saving a run id twice is an error.
	Save(ctx context.Context, rec Record) error

	// Get returns the record for runID, or an error with code NOT_FOUND.
	Get(ctx context.Context, runID string) (*Record, error)

	// Close releases resources held by the store.
	Close() error
}

// NewRunID returns a new random run id.
func NewRunID() string {
	return uuid.NewString()
}

// NewRecord builds the record for report r.
func NewRecord(runID, inputHash string, r *validate.Report) Record {
	rec := Record{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Accepted:  r.OK(),
		InputHash: inputHash,
		Issues:    r.Messages(),
	}
	if r != nil {
		rec.Kind = string(r.Kind)
	}
	if rec.Issues == nil {
		rec.Issues = []string{}
	}
	if !rec.Accepted {
		rec.Text = r.String()
	}
	return rec
}

// validRunID reports whether id is a UUID in canonical form. Run ids become
// directory names and document keys, so nothing else is accepted.
func validRunID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}
