package gmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteError reports a group file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteRecords writes recs to w, one line each. Fields holding a comma, quote
// or newline are quoted; nothing else is.
func WriteRecords(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	for _, r := range recs {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates or truncates path and writes recs to it.
func WriteFile(path string, recs []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	if err := WriteRecords(f, recs); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
