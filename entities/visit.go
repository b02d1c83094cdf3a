package entities

import "time"

type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VisitorID string    `gorm:"index" json:"visitor_id"`
	LastSeen  time.Time `gorm:"index" json:"last_seen"`
	Visits    int       `json:"visits"`
	CreatedAt time.Time `json:"-"`
}
