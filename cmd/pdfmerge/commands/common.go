// Package commands provides the CLI command handler for pdfmerge.
package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdfmerge/pdfmerge/internal/cliutil"
	"github.com/pdfmerge/pdfmerge/internal/fileutil"
	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ValidateOutputPath checks that the output path can be written and warns
// on r when an existing file, possibly one of the inputs, will be replaced.
func ValidateOutputPath(outputPath string, inputPaths []string, r report.Reporter) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return &pdferrors.UsageError{Option: "--output", Value: outputPath, Cause: err}
	}

	isDir, err := fileutil.IsDir(outputPath)
	if err == nil && isDir {
		return &pdferrors.UsageError{Option: "--output", Value: outputPath, Message: "is a directory"}
	}
	if err != nil {
		// Nothing to replace.
		return nil
	}

	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err == nil && absInputPath == absOutputPath {
			r.Report(report.Notice, fmt.Sprintf("Warning: output file %s is also an input and will be replaced", outputPath))
			return nil
		}
	}
	r.Report(report.Notice, fmt.Sprintf("Warning: output file %s already exists and will be overwritten", outputPath))
	return nil
}

// ExitCode maps an error returned by RunMerge to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, pdferrors.ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// ReportError writes the terminal message for err to w and returns the
// exit code.
func ReportError(w io.Writer, err error) int {
	switch {
	case err == nil:
	case errors.Is(err, pdferrors.ErrAborted):
		cliutil.Writef(w, "Aborted!\n")
	default:
		cliutil.Writef(w, "Error: %v\n", err)
	}
	return ExitCode(err)
}
