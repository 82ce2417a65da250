package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfmerge/pdfmerge/internal/fileutil"
	"github.com/pdfmerge/pdfmerge/pdferrors"
)

// DefaultPattern is the glob used when no pattern is configured.
const DefaultPattern = "*.pdf"

// ManifestSuffix is the literal, case-sensitive suffix a manifest line must
// end with to be kept.
const ManifestSuffix = ".pdf"

// Kind identifies which input source produced the paths.
type Kind string

const (
	// KindFiles means explicit file arguments were used.
	KindFiles Kind = "files"
	// KindManifest means a manifest file was read.
	KindManifest Kind = "manifest"
	// KindPattern means a glob pattern was expanded.
	KindPattern Kind = "pattern"
)

// Config describes the candidate inputs. Only the highest-precedence
// non-empty source is consulted.
type Config struct {
	// Files are explicit input paths, relative to Dir unless absolute.
	Files []string
	// Dir is the base directory for Files and Pattern. Empty means ".".
	Dir string
	// Manifest is the path of a file listing one input per line.
	Manifest string
	// Pattern is the glob matched inside Dir. Empty means DefaultPattern.
	Pattern string
}

// Result is the resolved, ordered input list.
type Result struct {
	// Kind is the source the paths came from.
	Kind Kind
	// Paths are the inputs in merge order. Duplicates are preserved.
	Paths []string
}

// Resolve produces the ordered input list from the highest-precedence source.
func Resolve(cfg Config) (*Result, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	switch {
	case len(cfg.Files) > 0:
		return &Result{Kind: KindFiles, Paths: JoinFiles(dir, cfg.Files)}, nil

	case cfg.Manifest != "":
		paths, err := ReadManifestFile(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindManifest, Paths: paths}, nil

	default:
		paths, err := Expand(dir, cfg.Pattern)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindPattern, Paths: paths}, nil
	}
}

// JoinFiles resolves each file against dir, keeping absolute paths as given.
func JoinFiles(dir string, files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if filepath.IsAbs(f) {
			out = append(out, f)
			continue
		}
		out = append(out, filepath.Join(dir, f))
	}
	return out
}

// ReadManifestFile reads the manifest at path.
func ReadManifestFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: opening manifest: %w", err)
	}
	defer f.Close()

	paths, err := ReadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("source: reading manifest %s: %w", path, err)
	}
	return paths, nil
}

// ReadManifest returns the trimmed lines of r that end with ManifestSuffix,
// in file order. The check is case-sensitive, so "b.PDF" is dropped.
func ReadManifest(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasSuffix(line, ManifestSuffix) {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Expand returns the entries of dir matching pattern. Supported syntax is
// that of filepath.Match: '*', '?', and '[...]' ranges.
func Expand(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if dir == "" {
		dir = "."
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, &pdferrors.UsageError{Option: "--pattern", Value: pattern, Cause: err}
	}
	return matches, nil
}

// ValidateFile checks that path exists and is not a directory. option names
// the flag or argument in the returned usage error.
func ValidateFile(option, path string) error {
	ok, err := fileutil.IsRegularFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &pdferrors.UsageError{Option: option, Value: path, Message: "file does not exist"}
	case err != nil:
		return &pdferrors.UsageError{Option: option, Value: path, Cause: err}
	case !ok:
		return &pdferrors.UsageError{Option: option, Value: path, Message: "is a directory"}
	}
	return nil
}

// ValidateDir checks that path exists and is a directory.
func ValidateDir(option, path string) error {
	ok, err := fileutil.IsDir(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &pdferrors.UsageError{Option: option, Value: path, Message: "directory does not exist"}
	case err != nil:
		return &pdferrors.UsageError{Option: option, Value: path, Cause: err}
	case !ok:
		return &pdferrors.UsageError{Option: option, Value: path, Message: "is not a directory"}
	}
	return nil
}

// ValidatePattern checks pattern syntax without touching the filesystem.
func ValidatePattern(pattern string) error {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return &pdferrors.UsageError{Option: "--pattern", Value: pattern, Cause: err}
	}
	return nil
}

// Validate checks every path the configuration refers to: the base
// directory, each explicit file, the manifest, and the pattern syntax.
func Validate(cfg Config) error {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := ValidateDir("--dir", dir); err != nil {
		return err
	}
	for _, f := range JoinFiles(dir, cfg.Files) {
		if err := ValidateFile("file", f); err != nil {
			return err
		}
	}
	if cfg.Manifest != "" {
		if err := ValidateFile("--from-list", cfg.Manifest); err != nil {
			return err
		}
	}
	if cfg.Pattern != "" {
		return ValidatePattern(cfg.Pattern)
	}
	return nil
}
