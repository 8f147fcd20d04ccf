package repository

import (
	"context"
	"errors"
	"time"

	"rfid_tracking/internal/models"
)

// ErrNotFound is returned when no page session has the requested id.
var ErrNotFound = errors.New("page session not found")

// PageRepo stores the filter state of mounted pages. Sessions live only as
// long as the page that created them; nothing is written to disk.
type PageRepo interface {
	Create(ctx context.Context, s models.PageSession) error
	Get(ctx context.Context, id string) (models.PageSession, error)
	// Update runs fn on the stored session under the store lock. The result is
	// written back only when fn reports a change.
	Update(ctx context.Context, id string, fn func(*models.PageSession) bool) (models.PageSession, error)
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes sessions untouched since before and returns their ids.
	DeleteIdle(ctx context.Context, before time.Time) ([]string, error)
	Count(ctx context.Context) int
}

type Repository struct {
	Pages PageRepo
}

func NewRepository() *Repository {
	return &Repository{
		Pages: NewPageMemory(),
	}
}
