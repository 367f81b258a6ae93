package providers

import (
	"context"

	"github.com/vukan322/streakcard/internal/core"
)

// Provider fetches a user's activity history. Days in the returned stats are
// date-ascending with no duplicates.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, handle string) (core.DevStats, error)
}
