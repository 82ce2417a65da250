// Package fileutil holds the file handling shared by the merge command,
// the merger and the MCP server.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OutputMode is the permission mode for merged PDFs: documents meant to be
// opened by other users and viewers.
const OutputMode os.FileMode = 0o644

// IsRegularFile reports whether path exists and is not a directory.
// The returned error is the underlying stat failure, if any.
func IsRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fileutil: opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("fileutil: creating destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("fileutil: copying %s: %w", src, err)
	}
	return out.Close()
}

// SanitizeOutputPath cleans an output path, resolves it to an absolute path,
// and rejects symlinks so that a write cannot be redirected elsewhere.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("fileutil: output is a directory: %s", abs)
		}
	case os.IsNotExist(err):
		// New file.
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}

	return abs, nil
}
