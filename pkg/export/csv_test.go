package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoclub/pkg/report"
)

func readAll(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteNotificationCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []report.NotificationRow{
		{District: "Lucknow", SchoolName: "Govt High", UDISECode: "09180103502", Management: "Government Aided", Category: "Secondary", Uploaded: true},
		{District: "Agra", SchoolName: "City, School", UDISECode: "09180103504", Management: "Private Unaided Recognized", Category: "Secondary", Uploaded: false},
	}
	require.NoError(t, WriteNotificationCSV(&buf, rows))

	got := readAll(t, &buf)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"District", "School Name", "UDISE Code", "School Management", "School Category", "Notification Uploaded"}, got[0])
	assert.Equal(t, "Yes", got[1][5])
	assert.Equal(t, "City, School", got[2][1]) // comma survives quoting
	assert.Equal(t, "No", got[2][5])
}

func TestWritePlantationCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []report.PlantationRow{
		{District: "Lucknow", SchoolName: "Govt High", UDISECode: "09180103502", Management: "Government Aided", Category: "Secondary", Saplings: 15, Uploaded: true},
	}
	require.NoError(t, WritePlantationCSV(&buf, rows))

	got := readAll(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"District", "School Name", "UDISE Code", "School Management", "School Category", "Trees Planted", "Tree Uploaded"}, got[0])
	assert.Equal(t, "15", got[1][5])
	assert.Equal(t, "Yes", got[1][6])
}

func TestWriteDistrictSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []report.DistrictSummary{
		{District: "Agra", TotalSchools: 2, Uploaded: 1, Percent: 50},
		{District: report.TotalLabel, TotalSchools: 2, Uploaded: 1, Percent: 50},
	}
	require.NoError(t, WriteDistrictSummaryCSV(&buf, rows))

	got := readAll(t, &buf)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Agra", "2", "1", "50.00"}, got[1])
	assert.Equal(t, report.TotalLabel, got[2][0])
}

func TestWriteEmptyReportStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNotificationCSV(&buf, nil))
	got := readAll(t, &buf)
	require.Len(t, got, 1)
}
