package signature

// Table is an in-memory copy of a delimited file: the header row plus every
// data row, in file order. It is not modified after loading.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable indexes header by name. When a name repeats, the first column wins.
func NewTable(header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: index}
}

func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
