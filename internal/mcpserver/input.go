package mcpserver

import (
	"fmt"

	"github.com/pdfmerge/pdfmerge/report"
	"github.com/pdfmerge/pdfmerge/sorter"
	"github.com/pdfmerge/pdfmerge/source"
)

// sourceInput selects the PDFs a tool operates on. Files take precedence over
// from_list, which takes precedence over dir/pattern.
type sourceInput struct {
	Files    []string `json:"files,omitempty"     jsonschema:"Explicit PDF paths, relative to dir. Takes precedence over from_list and pattern."`
	Dir      string   `json:"dir,omitempty"       jsonschema:"Base directory for files and pattern (default: server working directory)"`
	Pattern  string   `json:"pattern,omitempty"   jsonschema:"Glob pattern matched in dir (default: *.pdf)"`
	FromList string   `json:"from_list,omitempty" jsonschema:"Path to a text file listing one PDF path per line; lines not ending in .pdf are ignored"`
	Sort     string   `json:"sort,omitempty"      jsonschema:"Sort key: name or date or size, prefix with ^ for descending"`
}

// resolved is the outcome of resolving and sorting a sourceInput.
type resolved struct {
	kind  source.Kind
	spec  sorter.Spec
	paths []string
}

// resolve validates the input, resolves the paths and sorts them. Status
// lines from the sorter go to r.
func (in sourceInput) resolve(r report.Reporter) (*resolved, error) {
	srcCfg := source.Config{
		Files:    in.Files,
		Dir:      in.Dir,
		Manifest: in.FromList,
		Pattern:  in.Pattern,
	}
	if srcCfg.Pattern == "" {
		srcCfg.Pattern = source.DefaultPattern
	}
	if err := source.Validate(srcCfg); err != nil {
		return nil, err
	}
	spec, err := sorter.ParseSpec(in.Sort)
	if err != nil {
		return nil, err
	}

	res, err := source.Resolve(srcCfg)
	if err != nil {
		return nil, err
	}
	if len(res.Paths) > cfg.MaxInputs {
		return nil, fmt.Errorf("too many inputs: got %d, maximum is %d; set PDFMERGE_MAX_INPUTS to increase", len(res.Paths), cfg.MaxInputs)
	}

	paths, err := sorter.Sort(res.Paths, spec, r)
	if err != nil {
		return nil, err
	}
	return &resolved{kind: res.Kind, spec: spec, paths: paths}, nil
}
