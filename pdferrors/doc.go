// Package pdferrors provides structured error types for pdfmerge.
//
// Import path: github.com/pdfmerge/pdfmerge/pdferrors
//
// The types let callers tell apart the failure modes of a merge run with
// [errors.Is] and [errors.As]. Only [AppendError] is absorbed by the merger;
// every other kind ends the run.
//
// # Error Types
//
//   - [UsageError]: invalid flags, paths, sort keys or config files
//   - [SortError]: a sort key could not be read from the filesystem
//   - [AppendError]: a single input could not be added to the output document
//   - [WriteError]: the merged document could not be written
//
// # Sentinel Errors
//
//   - [ErrUsage]: Matches any [UsageError]
//   - [ErrSort]: Matches any [SortError]
//   - [ErrAppend]: Matches any [AppendError]
//   - [ErrNotFound]: Matches [AppendError] with NotFound=true
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrAborted]: returned when the operator declines the confirmation prompt
//
// # Usage Examples
//
//	result, err := m.Merge(paths, "merged.pdf")
//	if errors.Is(err, pdferrors.ErrWrite) {
//	    // Output could not be written; inputs were still released
//	}
//
// Inspect a skipped input:
//
//	for _, s := range result.Skipped {
//	    var appendErr *pdferrors.AppendError
//	    if errors.As(s.Err, &appendErr) && appendErr.NotFound {
//	        fmt.Printf("missing: %s\n", appendErr.Path)
//	    }
//	}
package pdferrors
