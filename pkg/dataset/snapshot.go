package dataset

import (
	"sort"
	"time"

	"ecoclub/entities"
)

// SkipCounts tracks malformed rows dropped per source during a load.
type SkipCounts struct {
	Schools       int `json:"schools"`
	Notifications int `json:"notifications"`
	Plantations   int `json:"plantations"`
}

func (s SkipCounts) Total() int { return s.Schools + s.Notifications + s.Plantations }

// Snapshot is one immutable load of the three source tables. Schools are
// sorted by (District, SchoolName); Uploaded and Saplings may contain codes
// that match no school, the report builder drops those on join.
type Snapshot struct {
	Schools  []entities.School
	Uploaded map[string]struct{}
	Saplings map[string]int
	LoadedAt time.Time
	Skipped  SkipCounts
	Source   string // csv | xlsx | csv+xlsx | sqlite
}

// Districts returns the distinct district names, sorted.
func (s *Snapshot) Districts() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, sc := range s.Schools {
		if _, ok := seen[sc.District]; !ok {
			seen[sc.District] = struct{}{}
			out = append(out, sc.District)
		}
	}
	sort.Strings(out)
	return out
}

// SchoolNames returns the sorted school names in a district. "All" or the
// empty string selects nothing, matching the dashboard's filter widget.
func (s *Snapshot) SchoolNames(district string) []string {
	if district == "" || district == "All" {
		return nil
	}
	var out []string
	for _, sc := range s.Schools {
		if sc.District == district {
			out = append(out, sc.SchoolName)
		}
	}
	sort.Strings(out)
	return out
}

// SortSchools orders the master list by (District, SchoolName); reports
// preserve this order.
func SortSchools(schools []entities.School) {
	sort.SliceStable(schools, func(i, j int) bool {
		if schools[i].District != schools[j].District {
			return schools[i].District < schools[j].District
		}
		return schools[i].SchoolName < schools[j].SchoolName
	})
}
