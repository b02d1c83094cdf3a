package repositoryImp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ecoclub/entities"
	"ecoclub/pkg/dataset"
	"ecoclub/pkg/dataset/repository"
)

// Accepted file names per source, CSV first (faster), then the workbook
// names the department actually uploads.
type sourceFiles struct {
	name string
	csv  []string
	xlsx []string
}

var sources = map[string]sourceFiles{
	"schools": {
		name: "school master",
		csv:  []string{"school_master.csv", "School Master.csv"},
		xlsx: []string{"school_master.xlsx", "School Master.xlsx"},
	},
	"notifications": {
		name: "notifications",
		csv:  []string{"notifications.csv", "Notifications.csv"},
		xlsx: []string{"notifications.xlsx", "All_Schools_with_Notifications_UTTAR PRADESH.xlsx"},
	},
	"plantation": {
		name: "tree data",
		csv:  []string{"tree_data.csv", "Tree_Data.csv"},
		xlsx: []string{"tree_data.xlsx", "UTTAR PRADESH.xlsx"},
	},
}

type fileRepo struct {
	dataDir string
}

// NewFile returns a repository loading the three source tables from
// dataDir, preferring CSV over XLSX per source.
func NewFile(dataDir string) repository.Repository {
	return &fileRepo{dataDir: dataDir}
}

func (r *fileRepo) Load() (*dataset.Snapshot, error) {
	snap := &dataset.Snapshot{
		Uploaded: map[string]struct{}{},
		Saplings: map[string]int{},
		LoadedAt: time.Now(),
	}

	usedCSV, usedXLSX := false, false
	load := func(key string) ([][]string, error) {
		src := sources[key]
		rows, fromCSV, err := r.readSource(src)
		if err != nil {
			return nil, err
		}
		if fromCSV {
			usedCSV = true
		} else {
			usedXLSX = true
		}
		return rows, nil
	}

	masterRows, err := load("schools")
	if err != nil {
		return nil, err
	}
	if err := parseSchools(masterRows, snap); err != nil {
		return nil, err
	}

	notifRows, err := load("notifications")
	if err != nil {
		return nil, err
	}
	if err := parseNotifications(notifRows, snap); err != nil {
		return nil, err
	}

	treeRows, err := load("plantation")
	if err != nil {
		return nil, err
	}
	if err := parsePlantation(treeRows, snap); err != nil {
		return nil, err
	}

	switch {
	case usedCSV && usedXLSX:
		snap.Source = "csv+xlsx"
	case usedXLSX:
		snap.Source = "xlsx"
	default:
		snap.Source = "csv"
	}
	return snap, nil
}

// readSource finds the first existing candidate file and returns its rows.
func (r *fileRepo) readSource(src sourceFiles) ([][]string, bool, error) {
	for _, name := range src.csv {
		p := filepath.Join(r.dataDir, name)
		if _, err := os.Stat(p); err == nil {
			rows, err := readCSV(p)
			if err != nil {
				return nil, false, &dataset.DataSourceError{Source: src.name, Path: p, Reason: "unreadable", Err: err}
			}
			return rows, true, nil
		}
	}
	for _, name := range src.xlsx {
		p := filepath.Join(r.dataDir, name)
		if _, err := os.Stat(p); err == nil {
			rows, err := readXLSX(p)
			if err != nil {
				return nil, false, &dataset.DataSourceError{Source: src.name, Path: p, Reason: "unreadable", Err: err}
			}
			return rows, false, nil
		}
	}
	return nil, false, &dataset.DataSourceError{
		Source: src.name,
		Path:   r.dataDir,
		Reason: fmt.Sprintf("no file found, expected one of %v", append(append([]string{}, src.csv...), src.xlsx...)),
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

// columns resolves a header row into canonical-field -> column index.
func columns(head []string) map[string]int {
	m := map[string]int{}
	for i, h := range head {
		if f, ok := dataset.CanonicalField(h); ok {
			if _, dup := m[f]; !dup {
				m[f] = i
			}
		}
	}
	return m
}

func missingColumns(m map[string]int, required ...string) []string {
	var missing []string
	for _, f := range required {
		if _, ok := m[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func parseSchools(rows [][]string, snap *dataset.Snapshot) error {
	if len(rows) == 0 {
		return &dataset.DataSourceError{Source: "school master", Reason: "empty table"}
	}
	cols := columns(rows[0])
	if missing := missingColumns(cols,
		dataset.FieldUDISE, dataset.FieldDistrict, dataset.FieldSchoolName,
		dataset.FieldManagement, dataset.FieldCategory); len(missing) > 0 {
		return &dataset.DataSourceError{
			Source: "school master",
			Reason: fmt.Sprintf("missing required columns %v, found headers %v", missing, rows[0]),
		}
	}

	seen := map[string]struct{}{}
	for _, rec := range rows[1:] {
		code := dataset.NormalizeUDISE(cell(rec, cols[dataset.FieldUDISE]))
		if code == "" {
			snap.Skipped.Schools++
			continue
		}
		if _, dup := seen[code]; dup {
			// duplicates keep the first occurrence
			snap.Skipped.Schools++
			continue
		}
		seen[code] = struct{}{}
		snap.Schools = append(snap.Schools, entities.School{
			UDISECode:  code,
			District:   cell(rec, cols[dataset.FieldDistrict]),
			SchoolName: cell(rec, cols[dataset.FieldSchoolName]),
			Management: cell(rec, cols[dataset.FieldManagement]),
			Category:   cell(rec, cols[dataset.FieldCategory]),
		})
	}
	dataset.SortSchools(snap.Schools)
	return nil
}

func parseNotifications(rows [][]string, snap *dataset.Snapshot) error {
	if len(rows) == 0 {
		return &dataset.DataSourceError{Source: "notifications", Reason: "empty table"}
	}
	cols := columns(rows[0])
	if missing := missingColumns(cols, dataset.FieldUDISE); len(missing) > 0 {
		return &dataset.DataSourceError{
			Source: "notifications",
			Reason: fmt.Sprintf("missing required columns %v, found headers %v", missing, rows[0]),
		}
	}
	for _, rec := range rows[1:] {
		code := dataset.NormalizeUDISE(cell(rec, cols[dataset.FieldUDISE]))
		if code == "" {
			snap.Skipped.Notifications++
			continue
		}
		snap.Uploaded[code] = struct{}{}
	}
	return nil
}

func parsePlantation(rows [][]string, snap *dataset.Snapshot) error {
	if len(rows) == 0 {
		return &dataset.DataSourceError{Source: "tree data", Reason: "empty table"}
	}
	cols := columns(rows[0])
	if missing := missingColumns(cols, dataset.FieldUDISE, dataset.FieldSaplings); len(missing) > 0 {
		return &dataset.DataSourceError{
			Source: "tree data",
			Reason: fmt.Sprintf("missing required columns %v, found headers %v", missing, rows[0]),
		}
	}
	for _, rec := range rows[1:] {
		code := dataset.NormalizeUDISE(cell(rec, cols[dataset.FieldUDISE]))
		if code == "" {
			snap.Skipped.Plantations++
			continue
		}
		raw := cell(rec, cols[dataset.FieldSaplings])
		n := 0
		if raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				snap.Skipped.Plantations++
				continue
			}
			n = v
		}
		if n < 0 {
			n = 0
		}
		snap.Saplings[code] += n
	}
	return nil
}
