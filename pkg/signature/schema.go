package signature

// Column names of the signature dump.
const (
	ColName        = "NAME"
	ColDescription = "DESCRIPTION"
	ColGeneSymbols = "GENE_SYMBOLS"
	ColSource      = "SOURCE"
)

// Signature is one decoded row.
type Signature struct {
	Name        string
	Description string
	GeneSymbols string
	Source      string
}

// Schema names the columns a conversion reads. Key is the grouping column.
type Schema struct {
	Key string
}

// NewSchema returns a schema grouping by key, or by SOURCE when key is empty.
func NewSchema(key string) Schema {
	if key == "" {
		key = ColSource
	}
	return Schema{Key: key}
}

// Columns lists the required columns in projection order, key last.
func (s Schema) Columns() []string {
	return []string{ColName, ColDescription, ColGeneSymbols, s.Key}
}

// Binding holds the resolved column positions of a schema within one table.
type Binding struct {
	name, description, genes, key int
}

// Bind resolves every required column of s in t.
func (s Schema) Bind(t *Table) (Binding, error) {
	cols := s.Columns()
	pos := make([]int, len(cols))
	var missing []string

	for i, c := range cols {
		idx, ok := t.Column(c)
		if !ok {
			missing = append(missing, c)
			continue
		}
		pos[i] = idx
	}
	if len(missing) > 0 {
		return Binding{}, &MissingColumnsError{Missing: missing, Header: t.Header}
	}

	return Binding{name: pos[0], description: pos[1], genes: pos[2], key: pos[3]}, nil
}

func (b Binding) Decode(row []string) Signature {
	return Signature{
		Name:        row[b.name],
		Description: row[b.description],
		GeneSymbols: row[b.genes],
		Source:      row[b.key],
	}
}

// Signatures decodes every row of t, in order.
func (b Binding) Signatures(t *Table) []Signature {
	sigs := make([]Signature, 0, t.Len())
	for _, row := range t.Rows {
		sigs = append(sigs, b.Decode(row))
	}
	return sigs
}
