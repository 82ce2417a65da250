package merger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfmerge/pdfmerge/internal/fileutil"
	"github.com/pdfmerge/pdfmerge/pdferrors"
)

// disableConfigDir keeps pdfcpu from creating its configuration directory
// under the user's home.
var disableConfigDir = sync.OnceFunc(api.DisableConfigDir)

// PDFCPUAppender implements Appender with github.com/pdfcpu/pdfcpu.
//
// Append reads and validates each input immediately, so broken files are
// rejected one at a time; Write then merges the accepted inputs into a
// temporary file next to the output and renames it into place. An output
// that is also one of the inputs is therefore read before it is replaced.
type PDFCPUAppender struct {
	conf   *model.Configuration
	files  []string
	logger Logger
}

// NewPDFCPUAppender creates an appender. Relaxed validation is used unless
// strict is set; relaxed mode accepts the minor spec violations common in
// scanner and office output. A nil logger discards diagnostics.
func NewPDFCPUAppender(strict bool, logger Logger) *PDFCPUAppender {
	disableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if strict {
		conf.ValidationMode = model.ValidationStrict
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &PDFCPUAppender{conf: conf, logger: logger}
}

// Append implements Appender.
func (a *PDFCPUAppender) Append(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &pdferrors.AppendError{Path: path, NotFound: errors.Is(err, fs.ErrNotExist), Cause: err}
	}
	if info.IsDir() {
		return 0, &pdferrors.AppendError{Path: path, Cause: errors.New("is a directory")}
	}

	pages, err := a.pageCount(path)
	if err != nil {
		return 0, &pdferrors.AppendError{Path: path, Cause: err}
	}

	a.files = append(a.files, path)
	a.logger.Debug("accepted input", "path", path, "pages", pages)
	return pages, nil
}

// pageCount parses and validates the PDF at path and returns its page count.
func (a *PDFCPUAppender) pageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return api.PageCount(f, a.conf)
}

// Write implements Appender.
func (a *PDFCPUAppender) Write(output string) error {
	if len(a.files) == 0 {
		return &pdferrors.WriteError{Path: output, Cause: errors.New("no inputs appended")}
	}

	tmp, err := os.CreateTemp(filepath.Dir(output), ".pdfmerge-*.pdf")
	if err != nil {
		return &pdferrors.WriteError{Path: output, Cause: err}
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	// Removal fails harmlessly once the rename has happened.
	defer os.Remove(tmpName)

	// pdfcpu wants at least two inputs for a merge; a single input is copied.
	if len(a.files) == 1 {
		err = fileutil.CopyFile(a.files[0], tmpName)
	} else {
		err = api.MergeCreateFile(a.files, tmpName, false, a.conf)
	}
	if err != nil {
		return &pdferrors.WriteError{Path: output, Cause: fmt.Errorf("merging %d inputs: %w", len(a.files), err)}
	}

	if err := os.Chmod(tmpName, fileutil.OutputMode); err != nil {
		return &pdferrors.WriteError{Path: output, Cause: err}
	}
	if err := os.Rename(tmpName, output); err != nil {
		return &pdferrors.WriteError{Path: output, Cause: err}
	}
	a.logger.Debug("wrote merged document", "output", output, "inputs", len(a.files))
	return nil
}

// Close implements Appender.
func (a *PDFCPUAppender) Close() error {
	a.files = nil
	return nil
}

// Files returns the inputs accepted so far, in append order.
func (a *PDFCPUAppender) Files() []string {
	out := make([]string, len(a.files))
	copy(out, a.files)
	return out
}

var _ Appender = (*PDFCPUAppender)(nil)
