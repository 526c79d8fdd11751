// Package repository loads the read-only content catalog and serves lookups
// over it.
package repository

import (
	"context"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/internal/domain/model"
)

// Store provides read access to the content catalog. Implementations never
// change their content after construction.
type Store interface {
	// Projects returns the project records in catalog order.
	Projects(ctx context.Context) []catalog.Record

	// Project returns the record with slug, or ErrNotFound.
	Project(ctx context.Context, slug string) (catalog.Record, error)

	// Games returns the games page content.
	Games(ctx context.Context) []model.Game

	// Version identifies the loaded content; it changes whenever the content does.
	Version() string

	// Count returns the number of project records.
	Count(ctx context.Context) int
}
