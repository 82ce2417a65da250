// Package source resolves the ordered list of input PDFs for a merge.
//
// Exactly one input source is used per run, chosen by precedence:
//
//  1. Explicit files, joined onto the base directory, in the order given.
//  2. A manifest file: one path per line; only lines ending in ".pdf" are kept.
//  3. A glob pattern (default "*.pdf") expanded against the base directory.
//
// Resolution never checks whether manifest entries or pattern matches are
// valid PDFs; that is the merger's job. An empty result is not an error.
//
// Validation helpers ([ValidateFile], [ValidateDir], [ValidatePattern]) are
// meant to run at argument-parsing time and return usage errors.
package source
