// Command pdfmerge merges PDF files into a single document.
package main

import (
	"context"
	"os"

	"github.com/pdfmerge/pdfmerge/cmd/pdfmerge/commands"
)

func main() {
	err := commands.HandleMerge(context.Background(), os.Args[1:])
	os.Exit(commands.ReportError(os.Stderr, err))
}
