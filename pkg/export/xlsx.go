package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"ecoclub/entities"
	"ecoclub/pkg/dataset"
)

// Consolidated builds the four-sheet workbook the district coordinators
// circulate: non-notifiers, tree rows with master metadata, non-planters,
// and notification rows with master metadata.
func Consolidated(snap *dataset.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	byCode := make(map[string]entities.School, len(snap.Schools))
	for _, sc := range snap.Schools {
		byCode[sc.UDISECode] = sc
	}

	masterHeader := []any{"District", "School Name", "UDISE Code", "School Management", "School Category"}
	masterRow := func(sc entities.School) []any {
		return []any{sc.District, sc.SchoolName, sc.UDISECode, sc.Management, sc.Category}
	}

	// A: schools that never uploaded the notification
	var nonNotifiers [][]any
	for _, sc := range snap.Schools {
		if _, up := snap.Uploaded[sc.UDISECode]; !up {
			nonNotifiers = append(nonNotifiers, masterRow(sc))
		}
	}
	if err := writeSheet(f, "A_NonNotifiers", masterHeader, nonNotifiers); err != nil {
		return nil, err
	}

	// B: plantation rows enriched with master metadata; codes with no
	// matching school keep blank metadata, as in the source workbook
	var treeRows [][]any
	for _, code := range sortedKeys(snap.Saplings) {
		sc := byCode[code]
		treeRows = append(treeRows, []any{code, snap.Saplings[code], sc.District, sc.SchoolName, sc.Management, sc.Category})
	}
	if err := writeSheet(f, "B_Tree_With_Meta",
		[]any{"UDISE Code", "Saplings", "District", "School Name", "School Management", "School Category"},
		treeRows); err != nil {
		return nil, err
	}

	// C: schools with no saplings reported
	var nonPlanters [][]any
	for _, sc := range snap.Schools {
		if snap.Saplings[sc.UDISECode] == 0 {
			nonPlanters = append(nonPlanters, masterRow(sc))
		}
	}
	if err := writeSheet(f, "C_NonPlanters", masterHeader, nonPlanters); err != nil {
		return nil, err
	}

	// D: notification rows enriched with master metadata
	var notifRows [][]any
	for _, code := range sortedKeys(snap.Uploaded) {
		sc := byCode[code]
		notifRows = append(notifRows, []any{code, sc.District, sc.SchoolName, sc.Management, sc.Category})
	}
	if err := writeSheet(f, "D_Notif_With_Meta",
		[]any{"UDISE Code", "District", "School Name", "School Management", "School Category"},
		notifRows); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex("A_NonNotifiers")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

func writeSheet(f *excelize.File, name string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &r); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
