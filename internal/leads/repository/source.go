package repository

import (
	"context"

	"radar/internal/leads/normalizer"
)

// LeadSource yields the raw rows of the lead table. Rows come back in source
// order; implementations never persist anything.
type LeadSource interface {
	Load(ctx context.Context) ([]normalizer.Row, error)
	Name() string
}
