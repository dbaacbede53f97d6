package signature

import (
	"fmt"
	"strings"
)

// LoadError reports a table that could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingColumnsError lists the required columns absent from a table header.
type MissingColumnsError struct {
	Missing []string
	Header  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required column(s) %s (have %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Header, ", "))
}
