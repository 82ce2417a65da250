// Package prompt asks the operator to confirm a merge before anything is
// written.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdfmerge/pdfmerge/internal/cliutil"
	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

// MergeQuestion is asked before a merge is started.
const MergeQuestion = "Are you sure you want to merge these PDFs?"

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) (bool, error) { return f(question) }

// Terminal reads answers line by line from an input stream.
//
// "y" and "yes" accept, "n" and "no" decline, in any case. An empty line or
// end of input declines. Any other answer repeats the question.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// Style, when set, decorates the question text.
	Style func(string) string
}

// NewTerminal creates a Terminal reading from in and prompting on out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer.
func (t *Terminal) Confirm(question string) (bool, error) {
	if t.Style != nil {
		question = t.Style(question)
	}
	for {
		cliutil.Writef(t.out, "%s [y/N]: ", question)

		line, err := t.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("prompt: reading answer: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof {
			// Keep the shell prompt off the question line.
			cliutil.Writef(t.out, "\n")
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		if eof {
			return false, nil
		}
		cliutil.Writef(t.out, "Error: invalid input\n")
	}
}

// Gate lists paths on r and, unless skip is set, asks c to confirm.
// It returns pdferrors.ErrAborted when the operator declines or when ctx is
// done before an answer arrives.
func Gate(ctx context.Context, paths []string, r report.Reporter, c Confirmer, skip bool) error {
	if r == nil {
		r = report.Nop{}
	}
	r.Report(report.Info, fmt.Sprintf("Found %d PDFs to merge:", len(paths)))
	for i, p := range paths {
		r.Report(report.Plain, cliutil.NumberedLine(i, p))
	}
	if skip {
		return nil
	}

	type answer struct {
		ok  bool
		err error
	}
	// Buffered so a late answer does not block the reader forever.
	answers := make(chan answer, 1)
	go func() {
		ok, err := c.Confirm(MergeQuestion)
		answers <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return pdferrors.ErrAborted
	case a := <-answers:
		if a.err != nil {
			return a.err
		}
		if !a.ok {
			return pdferrors.ErrAborted
		}
		return nil
	}
}
