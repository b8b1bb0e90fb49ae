package repository

import (
	"context"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// JobRepository keeps the whole job collection as one JSON array.
type JobRepository struct {
	store interfaces.IStore
	key   string
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(store interfaces.IStore, keyPrefix string) *JobRepository {
	return &JobRepository{store: store, key: storeKey(keyPrefix, KeyJobs)}
}

func (r *JobRepository) LoadAll(ctx context.Context) ([]entities.Job, bool, error) {
	var jobs []entities.Job
	found, err := loadJSON(ctx, r.store, r.key, &jobs, interfaces.ErrCorruptCollection)
	if err != nil || !found {
		return nil, false, err
	}
	if jobs == nil {
		jobs = []entities.Job{}
	}
	return jobs, true, nil
}

func (r *JobRepository) SaveAll(ctx context.Context, jobs []entities.Job) error {
	if jobs == nil {
		jobs = []entities.Job{}
	}
	return saveJSON(ctx, r.store, r.key, jobs)
}
