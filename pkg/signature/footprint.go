package signature

import (
	"os"

	"github.com/pbnjay/memory"
)

// Footprint compares an input file's size with the machine's memory. The
// whole table is held in memory, so very large dumps deserve a warning.
type Footprint struct {
	Size  uint64
	Total uint64
}

// Measure stats path and queries total system memory.
func Measure(path string) (Footprint, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Footprint{}, err
	}
	return Footprint{Size: uint64(st.Size()), Total: memory.TotalMemory()}, nil
}

// Exceeds reports whether the file is larger than a quarter of total memory.
// Unknown memory (zero) never exceeds.
func (f Footprint) Exceeds() bool {
	return f.Total > 0 && f.Size > f.Total/4
}
