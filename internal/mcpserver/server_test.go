package mcpserver

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		items  []int
		offset int
		limit  int
		want   []int
	}{
		{"default limit returns all when under 100", items, 0, 0, []int{0, 1, 2, 3, 4}},
		{"explicit limit", items, 0, 2, []int{0, 1}},
		{"offset only", items, 2, 0, []int{2, 3, 4}},
		{"offset and limit", items, 1, 2, []int{1, 2}},
		{"offset beyond end", items, 5, 2, nil},
		{"negative offset", items, -1, 2, nil},
		{"limit exceeds remaining", items, 3, 10, []int{3, 4}},
		{"nil slice", nil, 0, 2, nil},
		{"negative limit treated as default", items, 0, -1, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_OverflowLimit(t *testing.T) {
	items := []int{0, 1, 2}
	assert.Equal(t, []int{1, 2}, paginate(items, 1, math.MaxInt))
}

func TestPaginate_DefaultLimit(t *testing.T) {
	items := make([]string, 150)
	assert.Len(t, paginate(items, 0, 0), cfg.ListLimit)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no path", errors.New("bad sort key"), "bad sort key"},
		{"absolute path", errors.New("file not found: /home/alice/scans/a.pdf"), "file not found: <path>"},
		{"tmp path", errors.New("write error for /tmp/x/merged.pdf: disk full"), "write error for <path>: disk full"},
		{"relative path kept", errors.New("file not found: scans/a.pdf"), "file not found: scans/a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	r := errResult(errors.New("boom"))
	assert.True(t, r.IsError)
	assert.Len(t, r.Content, 1)
}

func TestServerInstructionsDescribePrecedence(t *testing.T) {
	assert.NotContains(t, serverInstructions, "exactly one")
	assert.Contains(t, serverInstructions, "files take precedence over from_list, which takes precedence over dir + pattern")
	for _, v := range []string{"PDFMERGE_MAX_INPUTS", "PDFMERGE_LIST_LIMIT", "PDFMERGE_MAX_LIMIT", "PDFMERGE_STRICT"} {
		assert.True(t, strings.Contains(serverInstructions, v), v)
	}
}
