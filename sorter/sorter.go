// Package sorter reorders resolved input paths before merging.
//
// A sort option is a key ("name", "date" or "size"), optionally prefixed
// with "^" for descending order. Keys are matched case-insensitively.
package sorter

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

// Key is the property paths are compared by.
type Key string

const (
	// KeyName compares final path components, ignoring case.
	KeyName Key = "name"
	// KeyDate compares modification times.
	KeyDate Key = "date"
	// KeySize compares file sizes in bytes.
	KeySize Key = "size"
)

// ReverseMarker prefixes a sort option to request descending order.
const ReverseMarker = "^"

// ValidKeys returns the supported sort keys.
func ValidKeys() []string {
	return []string{string(KeyName), string(KeyDate), string(KeySize)}
}

// ValidOptions returns every accepted sort option, including the reversed forms.
func ValidOptions() []string {
	keys := ValidKeys()
	opts := make([]string, 0, 2*len(keys))
	opts = append(opts, keys...)
	for _, k := range keys {
		opts = append(opts, ReverseMarker+k)
	}
	return opts
}

// IsValidKey reports whether key names a supported sort key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Spec is a parsed sort option. The zero value means "do not sort".
type Spec struct {
	Key        Key
	Descending bool
}

// IsZero reports whether the spec requests no sorting.
func (s Spec) IsZero() bool {
	return s.Key == ""
}

// Direction returns "ascending" or "descending".
func (s Spec) Direction() string {
	if s.Descending {
		return "descending"
	}
	return "ascending"
}

// String returns the option form of the spec, e.g. "^date".
func (s Spec) String() string {
	if s.IsZero() {
		return ""
	}
	if s.Descending {
		return ReverseMarker + string(s.Key)
	}
	return string(s.Key)
}

// StatusMessage is the line reported before sorting.
func (s Spec) StatusMessage() string {
	return fmt.Sprintf("Sorting PDFs by %s in %s order.", s.Key, s.Direction())
}

// ParseSpec parses a sort option. An empty option yields the zero Spec.
func ParseSpec(option string) (Spec, error) {
	opt := strings.ToLower(strings.TrimSpace(option))
	if opt == "" {
		return Spec{}, nil
	}
	var spec Spec
	if rest, ok := strings.CutPrefix(opt, ReverseMarker); ok {
		spec.Descending = true
		opt = rest
	}
	if !IsValidKey(opt) {
		return Spec{}, &pdferrors.UsageError{
			Option:  "--sort",
			Value:   option,
			Message: "valid options: " + strings.Join(ValidOptions(), ", "),
		}
	}
	spec.Key = Key(opt)
	return spec, nil
}

// sortKey holds the precomputed comparison value for one path.
type sortKey struct {
	path  string
	name  string
	mtime time.Time
	size  int64
}

// Sort returns paths reordered according to spec. The input slice is not
// modified. Equal keys keep their resolution order. A zero spec returns the
// paths unchanged and reports nothing.
//
// For KeyDate and KeySize every path is stat'ed first; the first failure is
// returned as a *pdferrors.SortError and no ordering is produced.
func Sort(paths []string, spec Spec, r report.Reporter) ([]string, error) {
	if spec.IsZero() {
		return paths, nil
	}
	if r == nil {
		r = report.Nop{}
	}
	r.Report(report.Notice, spec.StatusMessage())

	keys, err := buildKeys(paths, spec.Key)
	if err != nil {
		return nil, err
	}

	compare := comparator(spec.Key)
	slices.SortStableFunc(keys, func(a, b sortKey) int {
		if spec.Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.path
	}
	return out, nil
}

func buildKeys(paths []string, key Key) ([]sortKey, error) {
	fold := cases.Fold()
	keys := make([]sortKey, len(paths))
	for i, p := range paths {
		k := sortKey{path: p}
		switch key {
		case KeyName:
			k.name = fold.String(filepath.Base(p))
		case KeyDate, KeySize:
			info, err := os.Stat(p)
			if err != nil {
				return nil, &pdferrors.SortError{Key: string(key), Path: p, Cause: err}
			}
			k.mtime = info.ModTime()
			k.size = info.Size()
		}
		keys[i] = k
	}
	return keys, nil
}

func comparator(key Key) func(a, b sortKey) int {
	switch key {
	case KeyDate:
		return func(a, b sortKey) int { return a.mtime.Compare(b.mtime) }
	case KeySize:
		return func(a, b sortKey) int { return cmp.Compare(a.size, b.size) }
	default:
		return func(a, b sortKey) int { return strings.Compare(a.name, b.name) }
	}
}
