// Package naming turns group key values into output file paths.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Policy string

const (
	// Verbatim uses the key as the file name, refusing names that would
	// leave the output directory.
	Verbatim Policy = "verbatim"
	// Sanitize folds the key to [A-Za-z0-9._-].
	Sanitize Policy = "sanitize"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Verbatim, Sanitize:
		return p, nil
	case "":
		return Verbatim, nil
	default:
		return "", fmt.Errorf("unknown naming policy %q (want %s or %s)", s, Verbatim, Sanitize)
	}
}

// UnsafeNameError reports a key that cannot be used verbatim as a file name.
type UnsafeNameError struct {
	Key    string
	Reason string
}

func (e *UnsafeNameError) Error() string {
	return fmt.Sprintf("unsafe output name %q: %s", e.Key, e.Reason)
}

// CollisionError reports distinct keys that resolve to the same path.
type CollisionError struct {
	Path string
	Keys []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("keys %q all resolve to %s", e.Keys, e.Path)
}

// Resolver maps keys to paths inside Dir. Ext, when set, is appended to every
// name ("gmt" and ".gmt" are equivalent).
type Resolver struct {
	Dir    string
	Ext    string
	Policy Policy
}

// Name returns the file name for key under r's policy.
func (r Resolver) Name(key string) (string, error) {
	var name string
	switch r.Policy {
	case Sanitize:
		name = sanitize(key)
	case Verbatim, "":
		if err := checkVerbatim(key); err != nil {
			return "", err
		}
		name = key
	default:
		return "", fmt.Errorf("unknown naming policy %q", r.Policy)
	}

	if r.Ext != "" {
		name += "." + strings.TrimPrefix(r.Ext, ".")
	}
	return name, nil
}

// Path returns the output path for key.
func (r Resolver) Path(key string) (string, error) {
	name, err := r.Name(key)
	if err != nil {
		return "", err
	}
	if r.Dir == "" {
		return name, nil
	}
	return filepath.Join(r.Dir, name), nil
}

// Plan resolves every key up front so that a bad or colliding name fails the
// run before anything is written. The result is parallel to keys.
func (r Resolver) Plan(keys []string) ([]string, error) {
	paths := make([]string, len(keys))
	owners := make(map[string][]string, len(keys))

	for i, k := range keys {
		p, err := r.Path(k)
		if err != nil {
			return nil, err
		}
		paths[i] = p
		owners[p] = append(owners[p], k)
	}

	for _, p := range paths {
		if ks := owners[p]; len(ks) > 1 {
			return nil, &CollisionError{Path: p, Keys: ks}
		}
	}
	return paths, nil
}

func checkVerbatim(key string) error {
	switch {
	case key == "":
		return &UnsafeNameError{Key: key, Reason: "empty"}
	case key == "." || key == "..":
		return &UnsafeNameError{Key: key, Reason: "refers to a directory"}
	case strings.ContainsAny(key, `/\`):
		return &UnsafeNameError{Key: key, Reason: "contains a path separator"}
	case strings.ContainsRune(key, 0):
		return &UnsafeNameError{Key: key, Reason: "contains NUL"}
	}
	return nil
}

var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func sanitize(key string) string {
	folded, _, err := transform.String(foldMarks, key)
	if err != nil {
		folded = key
	}

	var b strings.Builder
	for _, c := range folded {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}

	name := strings.TrimLeft(b.String(), ".")
	if name == "" {
		return "unnamed"
	}
	return name
}
