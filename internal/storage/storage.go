// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"

	"reddit_alert/internal/model"
	"reddit_alert/internal/seen"
)

// Storage is the interface for all persistence operations.
type Storage interface {
	LoadSeen(ctx context.Context, kind model.ItemKind) (*seen.Set, error)
	SaveSeen(ctx context.Context, kind model.ItemKind, set *seen.Set) error

	Close() error
}
