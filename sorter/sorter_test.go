package sorter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		option string
		want   Spec
	}{
		{"", Spec{}},
		{"name", Spec{Key: KeyName}},
		{"NAME", Spec{Key: KeyName}},
		{"^name", Spec{Key: KeyName, Descending: true}},
		{"date", Spec{Key: KeyDate}},
		{"^Date", Spec{Key: KeyDate, Descending: true}},
		{"size", Spec{Key: KeySize}},
		{" ^SIZE ", Spec{Key: KeySize, Descending: true}},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, err := ParseSpec(tt.option)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, option := range []string{"pages", "^", "^^name", "name^", "-name"} {
		t.Run(option, func(t *testing.T) {
			_, err := ParseSpec(option)
			require.Error(t, err)
			assert.ErrorIs(t, err, pdferrors.ErrUsage)
			assert.Contains(t, err.Error(), "--sort")
			assert.Contains(t, err.Error(), "^size")
		})
	}
}

func TestSpec_Strings(t *testing.T) {
	asc := Spec{Key: KeyName}
	desc := Spec{Key: KeyDate, Descending: true}

	assert.Equal(t, "name", asc.String())
	assert.Equal(t, "^date", desc.String())
	assert.Equal(t, "", Spec{}.String())
	assert.Equal(t, "Sorting PDFs by name in ascending order.", asc.StatusMessage())
	assert.Equal(t, "Sorting PDFs by date in descending order.", desc.StatusMessage())
}

func TestValidOptions(t *testing.T) {
	assert.Equal(t, []string{"name", "date", "size", "^name", "^date", "^size"}, ValidOptions())
	assert.True(t, IsValidKey("size"))
	assert.False(t, IsValidKey("^size"))
}

func TestSort_ZeroSpecKeepsOrder(t *testing.T) {
	var rec report.Recorder
	in := []string{"c.pdf", "a.pdf", "b.pdf"}
	got, err := Sort(in, Spec{}, &rec)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Empty(t, rec.Entries(), "no status line without a sort option")
}

func TestSort_ByNameCaseInsensitive(t *testing.T) {
	in := []string{"b.pdf", "A.pdf"}

	asc, err := Sort(in, Spec{Key: KeyName}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.pdf", "b.pdf"}, asc)

	desc, err := Sort(in, Spec{Key: KeyName, Descending: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.pdf", "A.pdf"}, desc)

	assert.Equal(t, []string{"b.pdf", "A.pdf"}, in, "input must not be modified")
}

func TestSort_ByNameUsesFinalComponent(t *testing.T) {
	in := []string{"/z/alpha.pdf", "/a/Charlie.pdf", "/m/bravo.pdf"}
	got, err := Sort(in, Spec{Key: KeyName}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/z/alpha.pdf", "/m/bravo.pdf", "/a/Charlie.pdf"}, got)
}

func TestSort_StableForEqualKeys(t *testing.T) {
	in := []string{"x/Doc.pdf", "y/doc.pdf", "a.pdf", "z/DOC.pdf"}
	got, err := Sort(in, Spec{Key: KeyName}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "x/Doc.pdf", "y/doc.pdf", "z/DOC.pdf"}, got)
}

func TestSort_ByDate(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	files := map[string]time.Duration{
		"old.pdf":    0,
		"newest.pdf": 2 * time.Hour,
		"middle.pdf": time.Hour,
	}
	var in []string
	for _, name := range []string{"newest.pdf", "old.pdf", "middle.pdf"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0o600))
		mt := base.Add(files[name])
		require.NoError(t, os.Chtimes(p, mt, mt))
		in = append(in, p)
	}

	var rec report.Recorder
	got, err := Sort(in, Spec{Key: KeyDate}, &rec)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "old.pdf"),
		filepath.Join(dir, "middle.pdf"),
		filepath.Join(dir, "newest.pdf"),
	}, got)
	assert.Equal(t, []report.Entry{{Kind: report.Notice, Message: "Sorting PDFs by date in ascending order."}}, rec.Entries())

	got, err = Sort(in, Spec{Key: KeyDate, Descending: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newest.pdf"), got[0])
}

func TestSort_BySize(t *testing.T) {
	dir := t.TempDir()
	sizes := map[string]int{"big.pdf": 300, "small.pdf": 10, "mid.pdf": 100}
	var in []string
	for _, name := range []string{"big.pdf", "small.pdf", "mid.pdf"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, make([]byte, sizes[name]), 0o600))
		in = append(in, p)
	}

	got, err := Sort(in, Spec{Key: KeySize}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "small.pdf"),
		filepath.Join(dir, "mid.pdf"),
		filepath.Join(dir, "big.pdf"),
	}, got)

	got, err = Sort(in, Spec{Key: KeySize, Descending: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "big.pdf"), got[0])
}

func TestSort_MissingFileIsFatalForFilesystemKeys(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "here.pdf")
	require.NoError(t, os.WriteFile(present, nil, 0o600))
	missing := filepath.Join(dir, "gone.pdf")

	for _, key := range []Key{KeyDate, KeySize} {
		t.Run(string(key), func(t *testing.T) {
			got, err := Sort([]string{present, missing}, Spec{Key: key}, nil)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, pdferrors.ErrSort)
			assert.ErrorIs(t, err, os.ErrNotExist)

			var sortErr *pdferrors.SortError
			require.ErrorAs(t, err, &sortErr)
			assert.Equal(t, missing, sortErr.Path)
			assert.Equal(t, string(key), sortErr.Key)
		})
	}

	// Name sorting never touches the filesystem.
	got, err := Sort([]string{missing, present}, Spec{Key: KeyName}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{missing, present}, got)
}
