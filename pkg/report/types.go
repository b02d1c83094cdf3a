package report

import (
	"strings"
	"time"
)

type Status string

const (
	StatusAll         Status = "all"
	StatusUploaded    Status = "uploaded"
	StatusNotUploaded Status = "not_uploaded"
)

// ParseStatus accepts the spellings the dashboard widgets send
// ("Uploaded", "NOT Uploaded", "not_uploaded", ...). Anything else is All.
func ParseStatus(s string) Status {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	switch s {
	case "uploaded", "yes":
		return StatusUploaded
	case "notuploaded", "no":
		return StatusNotUploaded
	}
	return StatusAll
}

// FilterSpec holds the user-selected filters. Empty or "All" disables a
// predicate; predicates are AND-ed. An unknown district or management value
// simply yields an empty report.
type FilterSpec struct {
	District   string
	School     string
	Management string
	Status     Status
}

func (f FilterSpec) wantsDistrict() bool   { return f.District != "" && f.District != "All" }
func (f FilterSpec) wantsSchool() bool     { return f.School != "" && f.School != "All" }
func (f FilterSpec) wantsManagement() bool { return f.Management != "" && f.Management != "All" }

func (f FilterSpec) matchStatus(uploaded bool) bool {
	switch f.Status {
	case StatusUploaded:
		return uploaded
	case StatusNotUploaded:
		return !uploaded
	}
	return true
}

type NotificationRow struct {
	District   string `json:"district"`
	SchoolName string `json:"school_name"`
	UDISECode  string `json:"udise_code"`
	Management string `json:"management"`
	Category   string `json:"category"`
	Uploaded   bool   `json:"uploaded"`
}

type PlantationRow struct {
	District   string `json:"district"`
	SchoolName string `json:"school_name"`
	UDISECode  string `json:"udise_code"`
	Management string `json:"management"`
	Category   string `json:"category"`
	Saplings   int    `json:"saplings"`
	Uploaded   bool   `json:"uploaded"`
}

type NotificationSummary struct {
	TotalSchools int `json:"total_schools"`
	Uploaded     int `json:"uploaded"`
	NotUploaded  int `json:"not_uploaded"`
}

type PlantationSummary struct {
	TotalSchools  int     `json:"total_schools"`
	Uploaded      int     `json:"uploaded"`
	NotUploaded   int     `json:"not_uploaded"`
	TotalSaplings int     `json:"total_saplings"`
	AvgSaplings   float64 `json:"avg_saplings"`
}

type NotificationView struct {
	Summary     NotificationSummary `json:"summary"`
	Rows        []NotificationRow   `json:"rows"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type PlantationView struct {
	Summary     PlantationSummary `json:"summary"`
	Rows        []PlantationRow   `json:"rows"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// DistrictSummary is one row of the district-wise table; the builders append
// a trailing TOTAL row.
type DistrictSummary struct {
	District     string  `json:"district"`
	TotalSchools int     `json:"total_schools"`
	Uploaded     int     `json:"uploaded"`
	Percent      float64 `json:"percent"`
}

type ManagementSummary struct {
	SrNo         int    `json:"sr_no"` // 0 marks the TOTAL row
	Management   string `json:"management"`
	TotalSchools int    `json:"total_schools"`
	Uploaded     int    `json:"uploaded"`
	NotUploaded  int    `json:"not_uploaded"`
}

type PlantationManagementSummary struct {
	SrNo          int    `json:"sr_no"`
	Management    string `json:"management"`
	TotalSchools  int    `json:"total_schools"`
	Uploaded      int    `json:"uploaded"`
	TotalSaplings int    `json:"total_saplings"`
}

type OverallSummary struct {
	TotalSchools     int `json:"total_schools"`
	NotifUploaded    int `json:"notif_uploaded"`
	NotifNotUploaded int `json:"notif_not_uploaded"`
	TreeUploaded     int `json:"tree_uploaded"`
	TreeNotUploaded  int `json:"tree_not_uploaded"`
	TotalSaplings    int `json:"total_saplings"`
}

type SummaryView struct {
	Overall     OverallSummary                `json:"overall"`
	Districts   []DistrictSummary             `json:"districts"`
	Managements []ManagementSummary           `json:"managements"`
	Plantation  []PlantationManagementSummary `json:"plantation_managements"`
	Top         []DistrictSummary             `json:"top_districts"`
	Bottom      []DistrictSummary             `json:"bottom_districts"`
	LoadedAt    time.Time                     `json:"loaded_at"`
	Source      string                        `json:"source"`
}
