package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sig2gmt/internal/config"
)

const dump = "NAME,DESCRIPTION,GENE_SYMBOLS,SOURCE\nSIG1,desc,\"A,,B,C,\",GEO\nSIG2,x,\",,\",KEGG\n"

func noEnv(string) (string, bool) { return "", false }

func TestRun_ConvertsAndExitsZero(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sigs.csv")
	require.NoError(t, os.WriteFile(input, []byte(dump), 0o644))
	out := filepath.Join(dir, "out")

	var stderr bytes.Buffer
	code := Run(context.Background(), []string{"-i", input, "-o", out, "--no-color"}, &stderr)

	require.Equal(t, ExitOK, code, stderr.String())
	got, err := os.ReadFile(filepath.Join(out, "GEO"))
	require.NoError(t, err)
	assert.Equal(t, "SIG1,desc,\"A,B,C\"\n", string(got))

	got, err = os.ReadFile(filepath.Join(out, "KEGG"))
	require.NoError(t, err)
	assert.Equal(t, "SIG2,x,\n", string(got))

	assert.Contains(t, stderr.String(), "wrote 2 signatures to 2 files")
}

func TestRun_MissingInputExitsOne(t *testing.T) {
	dir := t.TempDir()

	var stderr bytes.Buffer
	code := Run(context.Background(), []string{"--input", filepath.Join(dir, "absent.csv"), "-o", dir, "-q"}, &stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "ERROR: load:")
}

func TestRun_BadFlagExitsTwo(t *testing.T) {
	var stderr bytes.Buffer
	code := Run(context.Background(), []string{"--bogus"}, &stderr)

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr.String(), "bogus")
}

func TestRun_PositionalArgumentsRejected(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, ExitUsage, Run(context.Background(), []string{"extra"}, &stderr))
}

func TestRun_HelpExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	code := Run(context.Background(), []string{"--help"}, &stderr)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr.String(), "--out-dir")
	assert.Contains(t, stderr.String(), config.DefaultInput)
}

func TestRun_InterruptedExits130(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sigs.csv")
	require.NoError(t, os.WriteFile(input, []byte(dump), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	code := Run(ctx, []string{"-i", input, "-o", dir, "-q"}, &stderr)
	assert.Equal(t, ExitInterrupt, code)
}

func TestResolveConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := resolveConfig(nil, noEnv, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveConfig_Precedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: file.csv\nout_dir: from-file\nkey: FILEKEY\n"), 0o644))

	env := func(k string) (string, bool) {
		if k == "SIG2GMT_OUT_DIR" {
			return "from-env", true
		}
		if k == "SIG2GMT_KEY" {
			return "ENVKEY", true
		}
		return "", false
	}

	cfg, err := resolveConfig([]string{"-c", path, "--key", "FLAGKEY"}, env, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "file.csv", cfg.Input)
	assert.Equal(t, "from-env", cfg.OutDir)
	assert.Equal(t, "FLAGKEY", cfg.Key)
}

func TestResolveConfig_InvalidNaming(t *testing.T) {
	t.Parallel()

	_, err := resolveConfig([]string{"--naming", "slug"}, noEnv, io.Discard)
	assert.Error(t, err)
}
