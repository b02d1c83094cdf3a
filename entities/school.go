package entities

import "time"

type School struct {
	UDISECode  string `gorm:"primaryKey;size:11" json:"udise_code"`
	District   string `gorm:"index" json:"district"`
	SchoolName string `json:"school_name"`
	Management string `gorm:"index" json:"management"` // e.g. "Government Aided", "Private Unaided Recognized"
	Category   string `json:"category"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NotificationRecord marks a school that uploaded its Eco Club notification.
type NotificationRecord struct {
	UDISECode string    `gorm:"primaryKey;size:11" json:"udise_code"`
	CreatedAt time.Time `json:"-"`
}

// PlantationRecord holds the summed sapling count reported for a school.
type PlantationRecord struct {
	UDISECode string    `gorm:"primaryKey;size:11" json:"udise_code"`
	Saplings  int       `json:"saplings"`
	CreatedAt time.Time `json:"-"`
}
