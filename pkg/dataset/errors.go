package dataset

import "fmt"

// DataSourceError is the only fatal load failure: a source file is missing,
// unreadable, or lacks a required column. Malformed individual rows are
// skipped and counted instead.
type DataSourceError struct {
	Source string // school master | notifications | tree data | snapshot store
	Path   string
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %s", e.Source, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
