package merger

import (
	"errors"
	"fmt"

	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "merged.pdf"

// Config configures a Merger.
type Config struct {
	// StrictValidation rejects inputs with minor PDF spec violations
	StrictValidation bool
	// Reporter receives the per-file status lines (nil discards them)
	Reporter report.Reporter
	// Logger receives diagnostics (nil discards them)
	Logger Logger
	// NewAppender creates the appender for each merge (nil uses NewPDFCPU)
	NewAppender AppenderFactory
}

// DefaultConfig returns a configuration that merges with pdfcpu using
// relaxed validation and discards all output.
func DefaultConfig() Config {
	return Config{
		Reporter:    report.Nop{},
		Logger:      NopLogger{},
		NewAppender: NewPDFCPU,
	}
}

// Merger appends inputs and writes the merged document.
//
// Concurrency: Merger instances hold no per-merge state and may be reused,
// but each Merge call runs on a single goroutine.
type Merger struct {
	config Config
}

// New creates a Merger. Nil fields of config fall back to DefaultConfig.
func New(config Config) *Merger {
	defaults := DefaultConfig()
	if config.Reporter == nil {
		config.Reporter = defaults.Reporter
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
	if config.NewAppender == nil {
		config.NewAppender = defaults.NewAppender
	}
	return &Merger{config: config}
}

// AppendedFile is an input that made it into the output.
type AppendedFile struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// SkippedFile is an input that could not be appended.
type SkippedFile struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Reason returns the skip reason as text.
func (s SkippedFile) Reason() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// MergeResult describes the outcome of a merge.
type MergeResult struct {
	// Appended lists accepted inputs in output order
	Appended []AppendedFile
	// Skipped lists rejected inputs in input order
	Skipped []SkippedFile
	// PageCount is the total number of pages appended
	PageCount int
	// Output is the written path; empty when nothing was written
	Output string
}

// Written reports whether an output document was produced.
func (r *MergeResult) Written() bool {
	return r.Output != ""
}

// Summary returns a one-line description of the merge.
func (r *MergeResult) Summary() string {
	if !r.Written() {
		return fmt.Sprintf("No output written (%d skipped).", len(r.Skipped))
	}
	return fmt.Sprintf("Merged %d of %d files (%d pages) into %s.",
		len(r.Appended), len(r.Appended)+len(r.Skipped), r.PageCount, r.Output)
}

// Merge appends every path in order and writes the result to output.
//
// Failures to append a single input are reported and recorded in the result
// but do not stop the merge. When no input is accepted, nothing is written
// and Merge returns a result with an empty Output and a nil error. Write
// failures are returned as *pdferrors.WriteError. The appender is closed on
// every path out of Merge.
func (m *Merger) Merge(paths []string, output string) (result *MergeResult, err error) {
	if output == "" {
		output = DefaultOutput
	}
	rep, log := m.config.Reporter, m.config.Logger

	app, err := m.config.NewAppender(m.config)
	if err != nil {
		return nil, fmt.Errorf("merger: creating appender: %w", err)
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Warn("closing appender failed", "error", cerr)
		}
	}()

	result = &MergeResult{}
	for _, path := range paths {
		pages, err := app.Append(path)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFile{Path: path, Err: err})
			rep.Report(report.Failure, skipMessage(path, err))
			log.Debug("skipped input", "path", path, "error", err)
			continue
		}
		result.Appended = append(result.Appended, AppendedFile{Path: path, Pages: pages})
		result.PageCount += pages
		rep.Report(report.Success, fmt.Sprintf("Appended `%s`", path))
	}

	if len(result.Appended) == 0 {
		rep.Report(report.Failure, "No valid PDFs found to merge.")
		log.Info("nothing to write", "skipped", len(result.Skipped))
		return result, nil
	}

	rep.Report(report.Info, "Merging PDFs...")
	if err := app.Write(output); err != nil {
		var writeErr *pdferrors.WriteError
		if !errors.As(err, &writeErr) {
			err = &pdferrors.WriteError{Path: output, Cause: err}
		}
		return result, err
	}
	result.Output = output
	log.Info("merge complete", "output", output, "files", len(result.Appended), "pages", result.PageCount)
	rep.Report(report.Info, fmt.Sprintf("Merged PDFs to `%s`.", output))
	return result, nil
}

func skipMessage(path string, err error) string {
	if errors.Is(err, pdferrors.ErrNotFound) {
		return fmt.Sprintf("File `%s` not found. Skipping", path)
	}
	cause := err
	var appendErr *pdferrors.AppendError
	if errors.As(err, &appendErr) && appendErr.Cause != nil {
		cause = appendErr.Cause
	}
	return fmt.Sprintf("Error appending `%s`: %v. Skipping", path, cause)
}
