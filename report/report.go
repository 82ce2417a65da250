// Package report carries status lines from the pipeline stages to the operator.
//
// Stages never print directly. They receive a [Reporter] and describe what
// happened with a [Kind]; the console implementation decides how each kind
// looks, and [Recorder] keeps the lines for tests and non-interactive callers.
package report

import (
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/pdfmerge/pdfmerge/internal/cliutil"
)

// Kind classifies a status line.
type Kind int

const (
	// Plain is unstyled output such as the numbered listing.
	Plain Kind = iota
	// Success marks an input that was appended.
	Success
	// Failure marks a skipped input or a run that produced nothing.
	Failure
	// Info marks progress and summary lines.
	Info
	// Notice marks lines that ask for attention (sort order, prompts, warnings).
	Notice
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Info:
		return "info"
	case Notice:
		return "notice"
	default:
		return "unknown"
	}
}

// Reporter receives status lines.
type Reporter interface {
	Report(kind Kind, message string)
}

// Func adapts a plain function to the Reporter interface.
type Func func(kind Kind, message string)

// Report implements Reporter.
func (f Func) Report(kind Kind, message string) { f(kind, message) }

// Nop discards every line.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Kind, string) {}

var (
	_ Reporter = Nop{}
	_ Reporter = Func(nil)
	_ Reporter = (*Console)(nil)
	_ Reporter = (*Recorder)(nil)
)

// ColorMode selects whether the console emits ANSI colors.
type ColorMode int

const (
	// ColorAuto colors output only when stdout is a terminal.
	ColorAuto ColorMode = iota
	// ColorNever disables colors.
	ColorNever
	// ColorAlways forces colors regardless of the terminal.
	ColorAlways
)

// Console writes one line per report, styled by kind.
type Console struct {
	out    io.Writer
	styles map[Kind]*color.Color
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, mode ColorMode) *Console {
	styles := map[Kind]*color.Color{
		Plain:   color.New(color.Reset),
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgRed),
		Info:    color.New(color.FgBlue),
		Notice:  color.New(color.FgYellow),
	}
	for _, c := range styles {
		switch mode {
		case ColorNever:
			c.DisableColor()
		case ColorAlways:
			c.EnableColor()
		}
	}
	return &Console{out: out, styles: styles}
}

// Report implements Reporter.
func (c *Console) Report(kind Kind, message string) {
	cliutil.Writef(c.out, "%s\n", c.Sprint(kind, message))
}

// Sprint returns message styled for kind without writing it.
// Plain messages are returned untouched.
func (c *Console) Sprint(kind Kind, message string) string {
	style, ok := c.styles[kind]
	if !ok || kind == Plain {
		return message
	}
	return style.Sprint(message)
}

// Entry is one recorded status line.
type Entry struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Recorder keeps every reported line in order. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Report implements Reporter.
func (r *Recorder) Report(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Kind: kind, Message: message})
}

// Entries returns a copy of the recorded lines.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded messages of the given kinds, or all
// messages when no kind is given.
func (r *Recorder) Messages(kinds ...Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if len(kinds) == 0 || containsKind(kinds, e.Kind) {
			out = append(out, e.Message)
		}
	}
	return out
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
