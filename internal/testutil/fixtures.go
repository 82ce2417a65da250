// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MinimalPDF returns a valid, uncompressed PDF 1.4 document with the given
// number of blank US Letter pages. The cross-reference table carries the
// real byte offsets, so strict validators accept it.
func MinimalPDF(pages int) []byte {
	if pages < 1 {
		pages = 1
	}
	widths := make([]int, pages)
	for i := range widths {
		widths[i] = 612
	}
	return MinimalPDFWidths(widths...)
}

// MinimalPDFWidths is MinimalPDF with one page per width, each 792 points
// tall. Distinct widths let tests tell pages apart after a merge. No
// widths yields a single US Letter page.
func MinimalPDFWidths(widths ...int) []byte {
	if len(widths) == 0 {
		widths = []int{612}
	}
	pages := len(widths)

	// Objects: 1 catalog, 2 page tree, 3.. pages.
	objects := make([]string, 0, pages+2)
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for _, w := range widths {
		objects = append(objects, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d 792] /Resources << >> >>", w))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// WritePDF writes a MinimalPDF with the given page count to path.
func WritePDF(t *testing.T, path string, pages int) {
	t.Helper()
	if err := os.WriteFile(path, MinimalPDF(pages), 0o600); err != nil {
		t.Fatalf("writing PDF fixture %s: %v", path, err)
	}
}

// WritePDFWidths writes a MinimalPDFWidths document to path.
func WritePDFWidths(t *testing.T, path string, widths ...int) {
	t.Helper()
	if err := os.WriteFile(path, MinimalPDFWidths(widths...), 0o600); err != nil {
		t.Fatalf("writing PDF fixture %s: %v", path, err)
	}
}

// WriteFiles creates each named file under dir with the given content and
// returns dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating fixture directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}
