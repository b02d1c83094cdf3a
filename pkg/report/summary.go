package report

import (
	"sort"

	"ecoclub/entities"
)

// TotalLabel is the synthetic district/management name of the trailing
// TOTAL row in summary tables.
const TotalLabel = "TOTAL"

// BuildDistrictSummary groups the notification status by district, sorted
// by district name, with a trailing TOTAL row.
func BuildDistrictSummary(schools []entities.School, uploaded map[string]struct{}) []DistrictSummary {
	byDistrict := map[string]*DistrictSummary{}
	var order []string
	for _, sc := range schools {
		d, ok := byDistrict[sc.District]
		if !ok {
			d = &DistrictSummary{District: sc.District}
			byDistrict[sc.District] = d
			order = append(order, sc.District)
		}
		d.TotalSchools++
		if _, up := uploaded[sc.UDISECode]; up {
			d.Uploaded++
		}
	}
	sort.Strings(order)

	out := make([]DistrictSummary, 0, len(order)+1)
	total := DistrictSummary{District: TotalLabel}
	for _, name := range order {
		d := byDistrict[name]
		d.Percent = percent(d.Uploaded, d.TotalSchools)
		out = append(out, *d)
		total.TotalSchools += d.TotalSchools
		total.Uploaded += d.Uploaded
	}
	total.Percent = percent(total.Uploaded, total.TotalSchools)
	return append(out, total)
}

// TopDistricts returns the n best-performing districts by upload percentage.
// The TOTAL row is never ranked.
func TopDistricts(rows []DistrictSummary, n int) []DistrictSummary {
	return rankDistricts(rows, n, func(a, b DistrictSummary) bool {
		if a.Percent != b.Percent {
			return a.Percent > b.Percent
		}
		return a.District < b.District
	})
}

// BottomDistricts returns the n districts needing the most attention.
func BottomDistricts(rows []DistrictSummary, n int) []DistrictSummary {
	return rankDistricts(rows, n, func(a, b DistrictSummary) bool {
		if a.Percent != b.Percent {
			return a.Percent < b.Percent
		}
		return a.District < b.District
	})
}

func rankDistricts(rows []DistrictSummary, n int, less func(a, b DistrictSummary) bool) []DistrictSummary {
	ranked := make([]DistrictSummary, 0, len(rows))
	for _, r := range rows {
		if r.District != TotalLabel {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// BuildManagementSummary groups notification status by school type, with
// serial numbers and a TOTAL row (SrNo 0) appended.
func BuildManagementSummary(schools []entities.School, uploaded map[string]struct{}) []ManagementSummary {
	byMgmt := map[string]*ManagementSummary{}
	var order []string
	for _, sc := range schools {
		m, ok := byMgmt[sc.Management]
		if !ok {
			m = &ManagementSummary{Management: sc.Management}
			byMgmt[sc.Management] = m
			order = append(order, sc.Management)
		}
		m.TotalSchools++
		if _, up := uploaded[sc.UDISECode]; up {
			m.Uploaded++
		}
	}
	sort.Strings(order)

	out := make([]ManagementSummary, 0, len(order)+1)
	total := ManagementSummary{Management: TotalLabel}
	for i, name := range order {
		m := byMgmt[name]
		m.SrNo = i + 1
		m.NotUploaded = m.TotalSchools - m.Uploaded
		out = append(out, *m)
		total.TotalSchools += m.TotalSchools
		total.Uploaded += m.Uploaded
	}
	total.NotUploaded = total.TotalSchools - total.Uploaded
	return append(out, total)
}

// BuildPlantationManagementSummary groups sapling uploads by school type.
func BuildPlantationManagementSummary(schools []entities.School, saplings map[string]int) []PlantationManagementSummary {
	byMgmt := map[string]*PlantationManagementSummary{}
	var order []string
	for _, sc := range schools {
		m, ok := byMgmt[sc.Management]
		if !ok {
			m = &PlantationManagementSummary{Management: sc.Management}
			byMgmt[sc.Management] = m
			order = append(order, sc.Management)
		}
		m.TotalSchools++
		if n := saplings[sc.UDISECode]; n > 0 {
			m.Uploaded++
			m.TotalSaplings += n
		}
	}
	sort.Strings(order)

	out := make([]PlantationManagementSummary, 0, len(order)+1)
	total := PlantationManagementSummary{Management: TotalLabel}
	for i, name := range order {
		m := byMgmt[name]
		m.SrNo = i + 1
		out = append(out, *m)
		total.TotalSchools += m.TotalSchools
		total.Uploaded += m.Uploaded
		total.TotalSaplings += m.TotalSaplings
	}
	return append(out, total)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}
