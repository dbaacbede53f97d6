package gmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sig2gmt/pkg/signature"
)

func TestGroupBy_Partition(t *testing.T) {
	t.Parallel()

	sigs := []signature.Signature{
		{Name: "s1", Source: "MSigDB"},
		{Name: "s2", Source: "GEO"},
		{Name: "s3", Source: "MSigDB"},
		{Name: "s4", Source: "GEO"},
		{Name: "s5", Source: "KEGG"},
	}

	groups := GroupBy(sigs)
	require.Len(t, groups, 3)

	assert.Equal(t, "GEO", groups[0].Key)
	assert.Equal(t, "KEGG", groups[1].Key)
	assert.Equal(t, "MSigDB", groups[2].Key)

	names := func(g Group) []string {
		out := []string{}
		for _, s := range g.Signatures {
			out = append(out, s.Name)
		}
		return out
	}
	assert.Equal(t, []string{"s2", "s4"}, names(groups[0]))
	assert.Equal(t, []string{"s5"}, names(groups[1]))
	assert.Equal(t, []string{"s1", "s3"}, names(groups[2]))

	total := 0
	for _, g := range groups {
		for _, s := range g.Signatures {
			assert.Equal(t, g.Key, s.Source)
		}
		total += len(g.Signatures)
	}
	assert.Equal(t, len(sigs), total)
}

func TestGroupBy_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupBy(nil))
}

func TestGroupBy_EmptyKeyIsItsOwnGroup(t *testing.T) {
	t.Parallel()

	groups := GroupBy([]signature.Signature{{Name: "a"}, {Name: "b", Source: "GEO"}})
	require.Len(t, groups, 2)
	assert.Equal(t, "", groups[0].Key)
}
