package repositoryImp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ecoclub/pkg/dataset"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "school_master.csv",
		"District Name,School Name,UDISE Code,School Management,School Category\n"+
			"Lucknow,Govt High,09180103502,Government Aided,Secondary\n"+
			"Lucknow,St. Mary,9180103503.0,Private Unaided Recognized,Secondary\n"+
			"Agra,City School,09180103504,Government Aided,Secondary\n"+
			"Agra,Duplicate,09180103504,Government Aided,Secondary\n"+
			",Blank Code,,Government Aided,Secondary\n")
	writeFile(t, dir, "notifications.csv",
		"UDISE Code\n09180103502\nn/a\n99999999999\n")
	writeFile(t, dir, "tree_data.csv",
		"UDISE ID,Saplings\n"+
			"09180103502,10\n"+
			"09180103502,5\n"+
			"09180103503,\n"+
			"09180103503,-4\n"+
			"09180103504,abc\n"+
			"88888888888,7\n")
}

func TestFileRepoLoadCSV(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	snap, err := NewFile(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "csv", snap.Source)

	// duplicate and blank-code rows dropped, order is (district, name)
	require.Len(t, snap.Schools, 3)
	assert.Equal(t, "City School", snap.Schools[0].SchoolName)
	assert.Equal(t, "Govt High", snap.Schools[1].SchoolName)
	assert.Equal(t, "09180103503", snap.Schools[2].UDISECode) // ".0" stripped, padded

	// uploaded set keeps unmatched codes; the join drops them later
	assert.Contains(t, snap.Uploaded, "09180103502")
	assert.Contains(t, snap.Uploaded, "99999999999")

	// 10+5 summed; empty count = 0; negative clamped; "abc" skipped
	assert.Equal(t, 15, snap.Saplings["09180103502"])
	assert.Equal(t, 0, snap.Saplings["09180103503"])
	assert.NotContains(t, snap.Saplings, "09180103504")
	assert.Equal(t, 7, snap.Saplings["88888888888"])

	assert.Equal(t, 2, snap.Skipped.Schools)       // blank + duplicate
	assert.Equal(t, 1, snap.Skipped.Notifications) // "n/a"
	assert.Equal(t, 1, snap.Skipped.Plantations)   // "abc"
}

func TestFileRepoLoadXLSXFallback(t *testing.T) {
	dir := t.TempDir()

	master := excelize.NewFile()
	sheet := master.GetSheetList()[0]
	rows := [][]any{
		{"District Name", "School Name", "UDISE Code", "School Management", "School Category"},
		{"Lucknow", "Govt High", "09180103502", "Government Aided", "Secondary"},
	}
	for i, r := range rows {
		row := r
		require.NoError(t, master.SetSheetRow(sheet, cellRef(i+1), &row))
	}
	require.NoError(t, master.SaveAs(filepath.Join(dir, "school_master.xlsx")))

	writeFile(t, dir, "notifications.csv", "UDISE Code\n09180103502\n")
	writeFile(t, dir, "tree_data.csv", "UDISE ID,Saplings\n09180103502,3\n")

	snap, err := NewFile(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "csv+xlsx", snap.Source)
	require.Len(t, snap.Schools, 1)
	assert.Equal(t, "09180103502", snap.Schools[0].UDISECode)
}

func TestFileRepoMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notifications.csv", "UDISE Code\n09180103502\n")
	writeFile(t, dir, "tree_data.csv", "UDISE ID,Saplings\n09180103502,3\n")

	_, err := NewFile(dir).Load()
	require.Error(t, err)
	var dsErr *dataset.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "school master", dsErr.Source)
	assert.Contains(t, dsErr.Reason, "no file found")
}

func TestFileRepoMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	writeFile(t, dir, "tree_data.csv", "UDISE ID,Remarks\n09180103502,fine\n")

	_, err := NewFile(dir).Load()
	var dsErr *dataset.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "tree data", dsErr.Source)
	assert.Contains(t, dsErr.Reason, "saplings")
}

func cellRef(row int) string {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return cell
}
