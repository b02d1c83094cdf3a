package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"ecoclub/pkg/report"
)

// Column headers match the dashboard tables; status flags are written as
// Yes/No the way the department reads them.

func WriteNotificationCSV(w io.Writer, rows []report.NotificationRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"District", "School Name", "UDISE Code", "School Management", "School Category", "Notification Uploaded"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.District, r.SchoolName, r.UDISECode, r.Management, r.Category, yesNo(r.Uploaded)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WritePlantationCSV(w io.Writer, rows []report.PlantationRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"District", "School Name", "UDISE Code", "School Management", "School Category", "Trees Planted", "Tree Uploaded"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.District, r.SchoolName, r.UDISECode, r.Management, r.Category, strconv.Itoa(r.Saplings), yesNo(r.Uploaded)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteDistrictSummaryCSV(w io.Writer, rows []report.DistrictSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"District", "Total Schools", "Eco-Club Notification Uploaded", "Percentage (%)"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.District,
			strconv.Itoa(r.TotalSchools),
			strconv.Itoa(r.Uploaded),
			strconv.FormatFloat(r.Percent, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
