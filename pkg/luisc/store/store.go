package store

import (
	"context"
	"time"
)

// Store persists compiled model builds so a team can trace what was
// shipped to the training service and when.
type Store interface {
	Close() error

	SaveBuild(ctx context.Context, b Build) error
	GetBuild(ctx context.Context, id string) (Build, bool, error)
	ListBuilds(ctx context.Context, limit int) ([]Build, error)
}

// Build is one archived compilation result.
type Build struct {
	ID             string // ULID, sorts by creation time
	AppName        string
	Culture        string
	SchemaVersion  string
	CreatedAt      time.Time
	IntentCount    int
	UtteranceCount int
	ModelJSON      string
}
