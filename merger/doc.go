// Package merger concatenates PDF files into a single output document.
//
// Inputs are appended in order through an [Appender]. An input that is
// missing or cannot be parsed is reported and skipped; the remaining inputs
// are still merged. The output is written once, after every input has been
// tried, and only when at least one input was accepted.
//
// # Quick Start
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge([]string{"a.pdf", "b.pdf"}, "merged.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
// Or with functional options:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithFilePaths("a.pdf", "b.pdf"),
//	    merger.WithOutput("combined.pdf"),
//	    merger.WithStrictValidation(true),
//	)
//
// # Reporting
//
// Per-file progress goes to a [report.Reporter]: "Appended `x`" on success,
// a skip line on failure, then "Merging PDFs..." and "Merged PDFs to `out`.".
// Diagnostics for debugging go to the [Logger] instead.
//
// # PDF Engine
//
// The default [Appender] is [PDFCPUAppender], built on
// github.com/pdfcpu/pdfcpu. Validation is relaxed unless
// [Config.StrictValidation] is set. Tests and alternative engines can supply
// their own factory through [Config.NewAppender].
package merger
