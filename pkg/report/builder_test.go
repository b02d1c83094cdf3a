package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoclub/entities"
)

func school(code, district, name, mgmt string) entities.School {
	return entities.School{UDISECode: code, District: district, SchoolName: name, Management: mgmt, Category: "Secondary"}
}

func TestBuildNotificationReport_LucknowScenario(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "Govt High", "Government"),
		school("00000000002", "Lucknow", "St. Mary", "Private"),
	}
	uploaded := map[string]struct{}{"00000000001": {}}

	rows, sum := BuildNotificationReport(schools, uploaded, FilterSpec{District: "Lucknow"})

	want := []NotificationRow{
		{District: "Lucknow", SchoolName: "Govt High", UDISECode: "00000000001", Management: "Government", Category: "Secondary", Uploaded: true},
		{District: "Lucknow", SchoolName: "St. Mary", UDISECode: "00000000002", Management: "Private", Category: "Secondary", Uploaded: false},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, NotificationSummary{TotalSchools: 2, Uploaded: 1, NotUploaded: 1}, sum)
}

func TestBuildNotificationReport_FilterPredicates(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "Govt High", "Government"),
		school("00000000002", "Lucknow", "St. Mary", "Private"),
		school("00000000003", "Agra", "City School", "Private"),
	}
	uploaded := map[string]struct{}{"00000000001": {}, "00000000003": {}}

	t.Run("row count never exceeds school count", func(t *testing.T) {
		filters := []FilterSpec{
			{},
			{District: "Lucknow"},
			{Management: "Private"},
			{Status: StatusUploaded},
			{District: "Agra", Management: "Private", Status: StatusNotUploaded},
		}
		for _, f := range filters {
			rows, _ := BuildNotificationReport(schools, uploaded, f)
			assert.LessOrEqual(t, len(rows), len(schools))
			for _, r := range rows {
				_, member := uploaded[r.UDISECode]
				assert.Equal(t, member, r.Uploaded)
			}
		}
	})

	t.Run("district filter returns only that district", func(t *testing.T) {
		rows, _ := BuildNotificationReport(schools, uploaded, FilterSpec{District: "Lucknow"})
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, "Lucknow", r.District)
		}
	})

	t.Run("management and status combine as AND for rows", func(t *testing.T) {
		rows, sum := BuildNotificationReport(schools, uploaded, FilterSpec{Management: "Private", Status: StatusUploaded})
		require.Len(t, rows, 1)
		assert.Equal(t, "00000000003", rows[0].UDISECode)
		// the summary still covers both Private schools
		assert.Equal(t, NotificationSummary{TotalSchools: 2, Uploaded: 1, NotUploaded: 1}, sum)
	})

	t.Run("unknown district yields empty result, not an error", func(t *testing.T) {
		rows, sum := BuildNotificationReport(schools, uploaded, FilterSpec{District: "Nowhere"})
		assert.Empty(t, rows)
		assert.Zero(t, sum.TotalSchools)
	})
}

func TestBuildNotificationReport_StatusFilterKeepsMetrics(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "Govt High", "Government"),
		school("00000000002", "Lucknow", "St. Mary", "Private"),
	}
	uploaded := map[string]struct{}{"00000000001": {}}

	rows, sum := BuildNotificationReport(schools, uploaded, FilterSpec{Status: StatusUploaded})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Uploaded)
	// the metric cards keep showing complete totals under a status filter
	assert.Equal(t, NotificationSummary{TotalSchools: 2, Uploaded: 1, NotUploaded: 1}, sum)

	rows, sum = BuildNotificationReport(schools, uploaded, FilterSpec{Status: StatusNotUploaded})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Uploaded)
	assert.Equal(t, NotificationSummary{TotalSchools: 2, Uploaded: 1, NotUploaded: 1}, sum)
}

func TestBuildNotificationReport_Idempotent(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "Govt High", "Government"),
		school("00000000002", "Agra", "City School", "Private"),
	}
	uploaded := map[string]struct{}{"00000000002": {}}
	f := FilterSpec{Status: StatusUploaded}

	rows1, sum1 := BuildNotificationReport(schools, uploaded, f)
	rows2, sum2 := BuildNotificationReport(schools, uploaded, f)
	assert.Equal(t, rows1, rows2)
	assert.Equal(t, sum1, sum2)
}

func TestBuildPlantationReport_DropsUnmatchedCodes(t *testing.T) {
	// S3 has saplings but no school row: its 7 saplings are dropped
	schools := []entities.School{
		school("00000000001", "Lucknow", "Govt High", "Government"),
	}
	saplings := map[string]int{
		"00000000001": 15, // 10 + 5 summed at load
		"00000000003": 7,
	}

	rows, sum := BuildPlantationReport(schools, saplings, FilterSpec{})
	require.Len(t, rows, 1)
	assert.Equal(t, "00000000001", rows[0].UDISECode)
	assert.Equal(t, 15, rows[0].Saplings)
	assert.True(t, rows[0].Uploaded)
	assert.Equal(t, 15, sum.TotalSaplings)
}

func TestBuildPlantationReport_SumConservation(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "A", "Government"),
		school("00000000002", "Lucknow", "B", "Private"),
		school("00000000003", "Agra", "C", "Government"),
	}
	saplings := map[string]int{
		"00000000001": 10,
		"00000000003": 4,
		"00000000009": 99, // unmatched
	}

	rows, sum := BuildPlantationReport(schools, saplings, FilterSpec{})
	total := 0
	for _, r := range rows {
		total += r.Saplings
	}
	assert.Equal(t, 14, total)
	assert.Equal(t, 14, sum.TotalSaplings)
	assert.Equal(t, PlantationSummary{TotalSchools: 3, Uploaded: 2, NotUploaded: 1, TotalSaplings: 14, AvgSaplings: 4.67}, sum)
}

func TestBuildPlantationReport_StatusFilter(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "A", "Government"),
		school("00000000002", "Lucknow", "B", "Private"),
	}
	saplings := map[string]int{"00000000001": 3}

	rows, sum := BuildPlantationReport(schools, saplings, FilterSpec{Status: StatusNotUploaded})
	require.Len(t, rows, 1)
	assert.Equal(t, "00000000002", rows[0].UDISECode)
	assert.Zero(t, rows[0].Saplings)
	// status narrows the rows, never the summary
	assert.Equal(t, PlantationSummary{TotalSchools: 2, Uploaded: 1, NotUploaded: 1, TotalSaplings: 3, AvgSaplings: 1.5}, sum)
}

func TestBuildOverallSummary(t *testing.T) {
	schools := []entities.School{
		school("00000000001", "Lucknow", "A", "Government"),
		school("00000000002", "Lucknow", "B", "Private"),
		school("00000000003", "Agra", "C", "Government"),
	}
	uploaded := map[string]struct{}{"00000000001": {}, "00000000002": {}}
	saplings := map[string]int{"00000000002": 20}

	o := BuildOverallSummary(schools, uploaded, saplings)
	assert.Equal(t, OverallSummary{
		TotalSchools:     3,
		NotifUploaded:    2,
		NotifNotUploaded: 1,
		TreeUploaded:     1,
		TreeNotUploaded:  2,
		TotalSaplings:    20,
	}, o)
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusUploaded, ParseStatus("Uploaded"))
	assert.Equal(t, StatusUploaded, ParseStatus("uploaded"))
	assert.Equal(t, StatusNotUploaded, ParseStatus("NOT Uploaded"))
	assert.Equal(t, StatusNotUploaded, ParseStatus("not_uploaded"))
	assert.Equal(t, StatusAll, ParseStatus(""))
	assert.Equal(t, StatusAll, ParseStatus("All"))
	assert.Equal(t, StatusAll, ParseStatus("garbage"))
}
