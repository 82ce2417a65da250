package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Plain, "plain"},
		{Success, "success"},
		{Failure, "failure"},
		{Info, "info"},
		{Notice, "notice"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestConsole_NoColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, ColorNever)

	c.Report(Success, "Appended `a.pdf`")
	c.Report(Failure, "File `b.pdf` not found. Skipping")
	c.Report(Plain, "  1 a.pdf")

	assert.Equal(t, "Appended `a.pdf`\nFile `b.pdf` not found. Skipping\n  1 a.pdf\n", buf.String())
}

func TestConsole_AlwaysColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, ColorAlways)

	c.Report(Success, "ok")
	c.Report(Failure, "bad")
	c.Report(Plain, "plain")

	out := buf.String()
	assert.Contains(t, out, "\x1b[32mok\x1b[")
	assert.Contains(t, out, "\x1b[31mbad\x1b[")
	assert.Contains(t, out, "plain\n")
	assert.NotContains(t, out, "\x1b[0mplain")
}

func TestConsole_Sprint(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, ColorAlways)
	assert.True(t, strings.HasPrefix(c.Sprint(Notice, "Are you sure?"), "\x1b[33mAre you sure?"))
	assert.Equal(t, "as-is", c.Sprint(Plain, "as-is"))
	assert.Equal(t, "as-is", c.Sprint(Kind(42), "as-is"))
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Report(Info, "one")
	r.Report(Failure, "two")
	r.Report(Info, "three")

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Kind: Failure, Message: "two"}, entries[1])

	assert.Equal(t, []string{"one", "two", "three"}, r.Messages())
	assert.Equal(t, []string{"one", "three"}, r.Messages(Info))
	assert.Nil(t, r.Messages(Success))

	// Entries returns a copy.
	entries[0].Message = "changed"
	assert.Equal(t, "one", r.Entries()[0].Message)
}

func TestFuncAndNop(t *testing.T) {
	var got []string
	f := Func(func(k Kind, m string) { got = append(got, k.String()+":"+m) })
	f.Report(Notice, "hello")
	assert.Equal(t, []string{"notice:hello"}, got)

	assert.NotPanics(t, func() { Nop{}.Report(Failure, "ignored") })
}
