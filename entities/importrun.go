package entities

import "time"

// ImportRun records one conversion of the source workbooks into the
// sqlite snapshot and the CSV fast path.
type ImportRun struct {
	RunID         uint      `gorm:"primaryKey" json:"run_id"`
	Schools       int       `json:"schools"`
	Notifications int       `json:"notifications"`
	Plantations   int       `json:"plantations"`
	SkippedRows   int       `json:"skipped_rows"`
	Source        string    `json:"source"` // csv|xlsx
	CreatedAt     time.Time `json:"created_at"`
}
