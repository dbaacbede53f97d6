package signature

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	utf8BOM   = "\ufeff"
)

// ErrNoHeader is returned for input without a single record.
var ErrNoHeader = errors.New("no header row")

// Load reads the table at path. Gzip input is decompressed transparently.
// Failures are *LoadError, except a context that is already done.
func Load(ctx context.Context, path string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r, closer, err := maybeGunzip(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer closer()

	t, err := LoadFrom(ctx, r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

// LoadFrom parses comma-separated records from r. The first record is the
// header; rows must have as many fields as the header.
func LoadFrom(ctx context.Context, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}
	cr.FieldsPerRecord = len(header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewTable(header, rows), nil
}

func maybeGunzip(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil || !bytes.Equal(magic, gzipMagic) {
		// short or plain input; the csv reader reports anything malformed
		return br, func() {}, nil
	}

	zr, err := pgzip.NewReader(br)
	if err != nil {
		return nil, nil, err
	}
	return zr, func() { _ = zr.Close() }, nil
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, utf8BOM)
}
