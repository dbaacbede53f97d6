package gmt

import (
	"strings"

	"github.com/ib-77/sig2gmt/pkg/signature"
)

// Record is one output line.
type Record struct {
	Name        string
	Description string
	Genes       string
}

func (r Record) fields() []string {
	return []string{r.Name, r.Description, r.Genes}
}

// CleanGenes drops the empty tokens of a comma-separated gene list. Order and
// duplicates are kept; a list with no genes becomes "".
func CleanGenes(s string) string {
	if s == "" {
		return ""
	}

	tokens := strings.Split(s, ",")
	kept := tokens[:0]
	for _, g := range tokens {
		if g != "" {
			kept = append(kept, g)
		}
	}
	return strings.Join(kept, ",")
}

// ToRecord projects a signature onto its output record.
func ToRecord(sig signature.Signature) Record {
	return Record{
		Name:        sig.Name,
		Description: sig.Description,
		Genes:       CleanGenes(sig.GeneSymbols),
	}
}

// ToRecords maps every signature, in order, one record per signature.
func ToRecords(sigs []signature.Signature) []Record {
	recs := make([]Record, len(sigs))
	for i, sig := range sigs {
		recs[i] = ToRecord(sig)
	}
	return recs
}
