package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Merged PDFs to `%s`.", "out.pdf")
	if got := buf.String(); got != "Merged PDFs to `out.pdf`." {
		t.Errorf("Writef() = %q, want %q", got, "Merged PDFs to `out.pdf`.")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// Should not panic
	var ew errorWriter
	Writef(ew, "This will fail")
}

func TestNumberedLine(t *testing.T) {
	tests := []struct {
		index int
		item  string
		want  string
	}{
		{0, "a.pdf", "  1 a.pdf"},
		{9, "b.pdf", " 10 b.pdf"},
		{99, "c.pdf", "100 c.pdf"},
		{999, "d.pdf", "1000 d.pdf"},
	}
	for _, tt := range tests {
		if got := NumberedLine(tt.index, tt.item); got != tt.want {
			t.Errorf("NumberedLine(%d, %q) = %q, want %q", tt.index, tt.item, got, tt.want)
		}
	}
}
