package merger

// Appender accumulates pages from input PDFs and serializes them once.
//
// Implementations own all PDF parsing. The merger only relies on this
// contract:
//
//   - Append fails for an input that is missing or not a readable PDF, and
//     leaves the accumulated document untouched in that case.
//   - Write serializes every successfully appended input, in append order,
//     to output (replacing any existing file).
//   - Close releases whatever Append and Write acquired. It is always called,
//     even after a failed Write.
//
// An Appender is used for a single merge and is not safe for concurrent use.
type Appender interface {
	// Append adds the pages of the PDF at path and returns how many were added.
	Append(path string) (pages int, err error)

	// Write serializes the accumulated document to output.
	Write(output string) error

	// Close releases resources held by the appender.
	Close() error
}

// AppenderFactory creates a fresh Appender for one merge run.
type AppenderFactory func(cfg Config) (Appender, error)

// NewPDFCPU is the default AppenderFactory. It returns a pdfcpu-backed
// appender honoring cfg.StrictValidation.
func NewPDFCPU(cfg Config) (Appender, error) {
	return NewPDFCPUAppender(cfg.StrictValidation, cfg.Logger), nil
}
