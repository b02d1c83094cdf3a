package repository

import "ecoclub/pkg/dataset"

type Repository interface {
	Load() (*dataset.Snapshot, error)
}
