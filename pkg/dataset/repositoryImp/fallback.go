package repositoryImp

import (
	"log"

	"ecoclub/pkg/dataset"
	"ecoclub/pkg/dataset/repository"
)

type fallbackRepo struct {
	primary   repository.Repository
	secondary repository.Repository
}

// NewFallback loads from primary and falls back to secondary when primary
// fails. The primary error is returned when both fail, it names the files
// the operator has to provide.
func NewFallback(primary, secondary repository.Repository) repository.Repository {
	return &fallbackRepo{primary: primary, secondary: secondary}
}

func (r *fallbackRepo) Load() (*dataset.Snapshot, error) {
	snap, err := r.primary.Load()
	if err == nil {
		return snap, nil
	}
	log.Printf("[dataset] primary load failed, trying snapshot store: %v", err)
	snap2, err2 := r.secondary.Load()
	if err2 != nil {
		return nil, err
	}
	return snap2, nil
}
