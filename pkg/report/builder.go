package report

import (
	"math"

	"ecoclub/entities"
)

// BuildNotificationReport left-joins the school master against the uploaded
// set and applies the filter. Row order follows the input school order.
// The summary counts the district/school/management-filtered base; the
// status filter narrows the rows only, so the metric cards keep showing
// complete totals for the selected district and school type.
// Pure: identical inputs give identical output.
func BuildNotificationReport(schools []entities.School, uploaded map[string]struct{}, f FilterSpec) ([]NotificationRow, NotificationSummary) {
	rows := []NotificationRow{}
	var sum NotificationSummary
	for _, sc := range schools {
		if f.wantsDistrict() && sc.District != f.District {
			continue
		}
		if f.wantsSchool() && sc.SchoolName != f.School {
			continue
		}
		if f.wantsManagement() && sc.Management != f.Management {
			continue
		}
		_, up := uploaded[sc.UDISECode]
		sum.TotalSchools++
		if up {
			sum.Uploaded++
		} else {
			sum.NotUploaded++
		}
		if !f.matchStatus(up) {
			continue
		}
		rows = append(rows, NotificationRow{
			District:   sc.District,
			SchoolName: sc.SchoolName,
			UDISECode:  sc.UDISECode,
			Management: sc.Management,
			Category:   sc.Category,
			Uploaded:   up,
		})
	}
	return rows, sum
}

// BuildPlantationReport left-joins the school master against the summed
// sapling counts (absent code = 0). Codes in the plantation table that match
// no school are dropped here, by never being visited. As with notifications,
// the summary covers the filtered base ignoring status; status narrows the
// rows only.
func BuildPlantationReport(schools []entities.School, saplings map[string]int, f FilterSpec) ([]PlantationRow, PlantationSummary) {
	rows := []PlantationRow{}
	var sum PlantationSummary
	for _, sc := range schools {
		if f.wantsDistrict() && sc.District != f.District {
			continue
		}
		if f.wantsSchool() && sc.SchoolName != f.School {
			continue
		}
		if f.wantsManagement() && sc.Management != f.Management {
			continue
		}
		n := saplings[sc.UDISECode]
		up := n > 0
		sum.TotalSchools++
		sum.TotalSaplings += n
		if up {
			sum.Uploaded++
		} else {
			sum.NotUploaded++
		}
		if !f.matchStatus(up) {
			continue
		}
		rows = append(rows, PlantationRow{
			District:   sc.District,
			SchoolName: sc.SchoolName,
			UDISECode:  sc.UDISECode,
			Management: sc.Management,
			Category:   sc.Category,
			Saplings:   n,
			Uploaded:   up,
		})
	}
	if sum.TotalSchools > 0 {
		sum.AvgSaplings = round2(float64(sum.TotalSaplings) / float64(sum.TotalSchools))
	}
	return rows, sum
}

// BuildOverallSummary computes the unfiltered metric cards at the top of
// the dashboard.
func BuildOverallSummary(schools []entities.School, uploaded map[string]struct{}, saplings map[string]int) OverallSummary {
	var o OverallSummary
	o.TotalSchools = len(schools)
	for _, sc := range schools {
		if _, up := uploaded[sc.UDISECode]; up {
			o.NotifUploaded++
		}
		if n := saplings[sc.UDISECode]; n > 0 {
			o.TreeUploaded++
			o.TotalSaplings += n
		}
	}
	o.NotifNotUploaded = o.TotalSchools - o.NotifUploaded
	o.TreeNotUploaded = o.TotalSchools - o.TreeUploaded
	return o
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
