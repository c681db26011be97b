package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/tuitype/internal/model"
)

// Reader is the read side of the result store.
type Reader interface {
	RecentOutcomes(ctx context.Context, limit int) ([]model.TestOutcome, error)
	UserStats(ctx context.Context) (model.UserStats, error)
	ModeStats(ctx context.Context) ([]model.ModeStats, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Summary model.UserStats
	Modes   []model.ModeStats
	Recent  []model.TestOutcome
}

// BuildReport loads aggregates and the last outcomes, newest first.
func BuildReport(ctx context.Context, r Reader, last int) (Report, error) {
	summary, err := r.UserStats(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load stats: %w", err)
	}
	modes, err := r.ModeStats(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load mode stats: %w", err)
	}
	recent, err := r.RecentOutcomes(ctx, last)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load history: %w", err)
	}
	return Report{Summary: summary, Modes: modes, Recent: recent}, nil
}
