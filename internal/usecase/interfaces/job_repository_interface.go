package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// IJobRepository reads and rewrites the whole job collection.
//
// LoadAll returns found=false when nothing was stored yet and an error
// wrapping ErrCorruptCollection when the stored payload cannot be parsed.

type IJobRepository interface {
	LoadAll(ctx context.Context) (jobs []entities.Job, found bool, err error)
	SaveAll(ctx context.Context, jobs []entities.Job) error
}
