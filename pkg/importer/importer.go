package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"ecoclub/entities"
	"ecoclub/pkg/dataset"
	"ecoclub/pkg/dataset/repository"
	"ecoclub/pkg/dataset/repositoryImp"
)

// Importer converts the uploaded workbooks into the two fast paths: CSV
// files next to the sources and the sqlite snapshot store. Run it whenever
// the department publishes new workbooks.
type Importer struct {
	files   repository.Repository
	store   *repositoryImp.SQLiteRepository
	dataDir string
}

func New(files repository.Repository, store *repositoryImp.SQLiteRepository, dataDir string) *Importer {
	return &Importer{files: files, store: store, dataDir: dataDir}
}

type Result struct {
	Run      entities.ImportRun `json:"run"`
	CSVFiles []string           `json:"csv_files"`
}

func (im *Importer) Run() (*Result, error) {
	snap, err := im.files.Load()
	if err != nil {
		return nil, err
	}
	run, err := im.store.Save(snap)
	if err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	files, err := im.writeCSVs(snap)
	if err != nil {
		return nil, fmt.Errorf("write csv fast path: %w", err)
	}
	return &Result{Run: run, CSVFiles: files}, nil
}

// writeCSVs emits the canonical CSV names the file repository prefers.
func (im *Importer) writeCSVs(snap *dataset.Snapshot) ([]string, error) {
	var written []string

	write := func(name string, header []string, rows [][]string) error {
		p := filepath.Join(im.dataDir, name)
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()
		cw := csv.NewWriter(f)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write(r); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	schoolRows := make([][]string, 0, len(snap.Schools))
	for _, sc := range snap.Schools {
		schoolRows = append(schoolRows, []string{sc.District, sc.SchoolName, sc.UDISECode, sc.Management, sc.Category})
	}
	if err := write("school_master.csv",
		[]string{"District Name", "School Name", "UDISE Code", "School Management", "School Category"},
		schoolRows); err != nil {
		return nil, err
	}

	notifCodes := make([]string, 0, len(snap.Uploaded))
	for code := range snap.Uploaded {
		notifCodes = append(notifCodes, code)
	}
	sort.Strings(notifCodes)
	notifRows := make([][]string, 0, len(notifCodes))
	for _, code := range notifCodes {
		notifRows = append(notifRows, []string{code})
	}
	if err := write("notifications.csv", []string{"UDISE Code"}, notifRows); err != nil {
		return nil, err
	}

	treeCodes := make([]string, 0, len(snap.Saplings))
	for code := range snap.Saplings {
		treeCodes = append(treeCodes, code)
	}
	sort.Strings(treeCodes)
	treeRows := make([][]string, 0, len(treeCodes))
	for _, code := range treeCodes {
		treeRows = append(treeRows, []string{code, strconv.Itoa(snap.Saplings[code])})
	}
	if err := write("tree_data.csv", []string{"UDISE ID", "Saplings"}, treeRows); err != nil {
		return nil, err
	}

	return written, nil
}
