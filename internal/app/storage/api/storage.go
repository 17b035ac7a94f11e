package storage

import (
	"github.com/merolaashraf15-source/MED/internal/app/config"
	"github.com/merolaashraf15-source/MED/internal/app/storage/api/model"
	"github.com/merolaashraf15-source/MED/internal/app/storage/memory"
	"github.com/merolaashraf15-source/MED/internal/app/storage/postgres"
)

// InitStorage selects the storage backend: in-memory when no database
// is configured, postgres otherwise.
func InitStorage(config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return memory.NewStorage(), nil
	}

	return postgres.NewStorage(config.DBConnect)
}
