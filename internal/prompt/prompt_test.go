package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		prompts int
	}{
		{"y", "y\n", true, 1},
		{"yes mixed case", "YeS\n", true, 1},
		{"yes without newline", "yes", true, 1},
		{"n", "n\n", false, 1},
		{"no", "NO\n", false, 1},
		{"empty line", "\n", false, 1},
		{"eof", "", false, 1},
		{"invalid then yes", "maybe\ny\n", true, 2},
		{"invalid then eof", "maybe\n", false, 2},
		{"surrounding spaces", "  y  \n", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)

			got, err := term.Confirm("Continue?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, strings.Count(out.String(), "Continue? [y/N]: "))
		})
	}
}

func TestTerminalStyle(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("y\n"), &out)
	term.Style = func(s string) string { return "<" + s + ">" }

	_, err := term.Confirm("Go?")
	require.NoError(t, err)
	assert.Equal(t, "<Go?> [y/N]: ", out.String())
}

func TestTerminalReadError(t *testing.T) {
	term := NewTerminal(iotest.ErrReader(errors.New("tty gone")), &bytes.Buffer{})

	_, err := term.Confirm("Go?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestGate(t *testing.T) {
	paths := []string{"a.pdf", "b.pdf"}

	t.Run("lists paths and accepts", func(t *testing.T) {
		rec := &report.Recorder{}
		var asked string
		c := ConfirmFunc(func(q string) (bool, error) {
			asked = q
			return true, nil
		})

		require.NoError(t, Gate(context.Background(), paths, rec, c, false))
		assert.Equal(t, MergeQuestion, asked)
		assert.Equal(t, []string{"Found 2 PDFs to merge:"}, rec.Messages(report.Info))
		assert.Equal(t, []string{"  1 a.pdf", "  2 b.pdf"}, rec.Messages(report.Plain))
	})

	t.Run("decline aborts", func(t *testing.T) {
		c := ConfirmFunc(func(string) (bool, error) { return false, nil })
		err := Gate(context.Background(), paths, &report.Recorder{}, c, false)
		assert.ErrorIs(t, err, pdferrors.ErrAborted)
	})

	t.Run("skip does not ask", func(t *testing.T) {
		c := ConfirmFunc(func(string) (bool, error) {
			t.Fatal("confirmer should not be called")
			return false, nil
		})
		rec := &report.Recorder{}
		require.NoError(t, Gate(context.Background(), paths, rec, c, true))
		assert.Len(t, rec.Messages(report.Plain), 2)
	})

	t.Run("confirm error propagates", func(t *testing.T) {
		cause := errors.New("closed")
		c := ConfirmFunc(func(string) (bool, error) { return false, cause })
		assert.ErrorIs(t, Gate(context.Background(), paths, nil, c, false), cause)
	})
}

func TestGateCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	var out bytes.Buffer
	term := NewTerminal(pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() { done <- Gate(ctx, []string{"a.pdf"}, &report.Recorder{}, term, false) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, pdferrors.ErrAborted)
	case <-time.After(5 * time.Second):
		t.Fatal("Gate did not return after the context was cancelled")
	}
}

func TestGateCancelledBeforeAsking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	c := ConfirmFunc(func(string) (bool, error) {
		<-block
		return true, nil
	})

	assert.ErrorIs(t, Gate(ctx, []string{"a.pdf"}, nil, c, false), pdferrors.ErrAborted)
}
