package gmt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecords_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteRecords(&buf, []Record{
		{Name: "SIG1", Description: "desc", Genes: "A,B,C"},
		{Name: "NAME", Description: "DESCRIPTION", Genes: ""},
		{Name: "SIG3", Description: "one", Genes: "TP53"},
		{Name: "SIG4", Description: `say "hi"`, Genes: "X"},
	})
	require.NoError(t, err)

	want := "SIG1,desc,\"A,B,C\"\n" +
		"NAME,DESCRIPTION,\n" +
		"SIG3,one,TP53\n" +
		"SIG4,\"say \"\"hi\"\"\",X\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFile_CreatesAndTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "GEO")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is long\n"), 0o644))

	require.NoError(t, WriteFile(path, []Record{{Name: "S", Description: "d", Genes: "A"}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S,d,A\n", string(got))
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "GEO")
	err := WriteFile(path, nil)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, path, we.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
