package visitor

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"ecoclub/entities"
)

// Tracker counts dashboard visits per visitor cookie. "Active" means seen
// within the last five minutes.
type Tracker struct {
	db           *gorm.DB
	activeWindow time.Duration
}

func NewTracker(db *gorm.DB) *Tracker {
	return &Tracker{db: db, activeWindow: 5 * time.Minute}
}

type Stats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
	ActiveNow      int64 `json:"active_now"`
}

func (t *Tracker) Track(visitorID string) error {
	if visitorID == "" {
		return nil
	}
	var v entities.Visit
	err := t.db.Where("visitor_id = ?", visitorID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return t.db.Create(&entities.Visit{VisitorID: visitorID, LastSeen: time.Now(), Visits: 1}).Error
	}
	if err != nil {
		return err
	}
	v.Visits++
	v.LastSeen = time.Now()
	return t.db.Save(&v).Error
}

func (t *Tracker) Stats() (Stats, error) {
	var s Stats
	if err := t.db.Model(&entities.Visit{}).Select("COALESCE(SUM(visits), 0)").Scan(&s.TotalVisits).Error; err != nil {
		return s, err
	}
	if err := t.db.Model(&entities.Visit{}).Count(&s.UniqueVisitors).Error; err != nil {
		return s, err
	}
	cut := time.Now().Add(-t.activeWindow)
	if err := t.db.Model(&entities.Visit{}).Where("last_seen >= ?", cut).Count(&s.ActiveNow).Error; err != nil {
		return s, err
	}
	return s, nil
}
