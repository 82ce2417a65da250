package pdferrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUsage indicates invalid command-line input or configuration.
	ErrUsage = errors.New("usage error")

	// ErrSort indicates a sort key could not be determined.
	ErrSort = errors.New("sort error")

	// ErrAppend indicates an input file could not be appended.
	ErrAppend = errors.New("append error")

	// ErrNotFound indicates an input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrWrite indicates the merged output could not be written.
	ErrWrite = errors.New("write error")

	// ErrAborted indicates the operator declined the confirmation prompt.
	ErrAborted = errors.New("aborted")
)

// UsageError represents invalid input detected before any work starts.
type UsageError struct {
	// Option is the flag or argument name (e.g. "--dir", "file")
	Option string
	// Value is the offending value (may be nil)
	Value any
	// Message describes what is wrong
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *UsageError) Error() string {
	msg := "invalid value"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" %q", fmt.Sprint(e.Value))
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *UsageError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// SortError represents a failure to read a sort key for a path.
type SortError struct {
	// Key is the sort key being extracted ("date" or "size")
	Key string
	// Path is the file whose key could not be read
	Path string
	// Cause is the underlying filesystem error
	Cause error
}

// Error returns a human-readable error message.
func (e *SortError) Error() string {
	msg := "sort error"
	if e.Key != "" {
		msg += " by " + e.Key
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SortError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SortError) Is(target error) bool {
	return target == ErrSort
}

// AppendError represents a failure to add one input to the output document.
type AppendError struct {
	// Path is the input file
	Path string
	// NotFound is true when the input does not exist
	NotFound bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *AppendError) Error() string {
	if e.NotFound {
		return "file not found: " + e.Path
	}
	msg := "append error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *AppendError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrAppend, and ErrNotFound when NotFound is set.
func (e *AppendError) Is(target error) bool {
	if target == ErrAppend {
		return true
	}
	return target == ErrNotFound && e.NotFound
}

// WriteError represents a failure to write the merged document.
type WriteError struct {
	// Path is the output file
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
