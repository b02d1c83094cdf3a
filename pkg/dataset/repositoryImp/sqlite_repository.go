package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"ecoclub/entities"
	"ecoclub/pkg/dataset"
)

// SQLiteRepository stores and loads the imported snapshot. It is the fast
// path the importer populates so the dashboard can start without the source
// workbooks on disk.
type SQLiteRepository struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) *SQLiteRepository { return &SQLiteRepository{db: db} }

func (r *SQLiteRepository) Load() (*dataset.Snapshot, error) {
	var run entities.ImportRun
	if err := r.db.Order("created_at desc").First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &dataset.DataSourceError{Source: "snapshot store", Reason: "no imported snapshot"}
		}
		return nil, err
	}

	snap := &dataset.Snapshot{
		Uploaded: map[string]struct{}{},
		Saplings: map[string]int{},
		LoadedAt: run.CreatedAt,
		Source:   "sqlite",
	}
	if err := r.db.Order("district asc, school_name asc").Find(&snap.Schools).Error; err != nil {
		return nil, err
	}

	var notifs []entities.NotificationRecord
	if err := r.db.Find(&notifs).Error; err != nil {
		return nil, err
	}
	for _, n := range notifs {
		snap.Uploaded[n.UDISECode] = struct{}{}
	}

	var plants []entities.PlantationRecord
	if err := r.db.Find(&plants).Error; err != nil {
		return nil, err
	}
	for _, p := range plants {
		snap.Saplings[p.UDISECode] = p.Saplings
	}
	return snap, nil
}

// Save replaces the persisted snapshot and records an ImportRun.
func (r *SQLiteRepository) Save(snap *dataset.Snapshot) (entities.ImportRun, error) {
	run := entities.ImportRun{
		Schools:       len(snap.Schools),
		Notifications: len(snap.Uploaded),
		Plantations:   len(snap.Saplings),
		SkippedRows:   snap.Skipped.Total(),
		Source:        snap.Source,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&entities.School{}, &entities.NotificationRecord{}, &entities.PlantationRecord{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if len(snap.Schools) > 0 {
			if err := tx.CreateInBatches(snap.Schools, 500).Error; err != nil {
				return err
			}
		}
		notifs := make([]entities.NotificationRecord, 0, len(snap.Uploaded))
		for code := range snap.Uploaded {
			notifs = append(notifs, entities.NotificationRecord{UDISECode: code})
		}
		if len(notifs) > 0 {
			if err := tx.CreateInBatches(notifs, 500).Error; err != nil {
				return err
			}
		}
		plants := make([]entities.PlantationRecord, 0, len(snap.Saplings))
		for code, n := range snap.Saplings {
			plants = append(plants, entities.PlantationRecord{UDISECode: code, Saplings: n})
		}
		if len(plants) > 0 {
			if err := tx.CreateInBatches(plants, 500).Error; err != nil {
				return err
			}
		}
		return tx.Create(&run).Error
	})
	return run, err
}
