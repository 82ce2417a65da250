package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdfmerge/pdfmerge/internal/fileutil"
	"github.com/pdfmerge/pdfmerge/merger"
	"github.com/pdfmerge/pdfmerge/report"
)

type mergeInput struct {
	Inputs sourceInput `json:"inputs,omitempty" jsonschema:"Which PDFs to merge, in output order"`
	Output string      `json:"output,omitempty" jsonschema:"Output PDF path (default: merged.pdf). Existing files are overwritten."`
	Strict *bool       `json:"strict,omitempty" jsonschema:"Reject PDFs with minor spec violations (default from PDFMERGE_STRICT)"`
}

type mergeSkipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type mergeMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type mergeOutput struct {
	Source    string                `json:"source"`
	WrittenTo string                `json:"written_to,omitempty"`
	PageCount int                   `json:"page_count"`
	Appended  []merger.AppendedFile `json:"appended,omitempty"`
	Skipped   []mergeSkipped        `json:"skipped,omitempty"`
	Messages  []mergeMessage        `json:"messages,omitempty"`
	Summary   string                `json:"summary"`
}

// newAppender is replaced in tests.
var newAppender merger.AppenderFactory = merger.NewPDFCPU

func handleMergePDFs(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	rec := &report.Recorder{}

	res, err := input.Inputs.resolve(rec)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	if len(res.paths) == 0 {
		return nil, mergeOutput{Source: string(res.kind), Summary: "No PDFs found."}, nil
	}

	outPath := input.Output
	if outPath == "" {
		outPath = merger.DefaultOutput
	}
	cleanPath, err := fileutil.SanitizeOutputPath(outPath)
	if err != nil {
		return errResult(fmt.Errorf("invalid output path: %w", err)), mergeOutput{}, nil
	}

	strict := cfg.StrictValidation
	if input.Strict != nil {
		strict = *input.Strict
	}

	mc := merger.DefaultConfig()
	mc.StrictValidation = strict
	mc.Reporter = rec
	mc.NewAppender = newAppender

	result, err := merger.New(mc).Merge(res.paths, cleanPath)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		Source:    string(res.kind),
		PageCount: result.PageCount,
		Appended:  makeSlice[merger.AppendedFile](len(result.Appended)),
		Skipped:   makeSlice[mergeSkipped](len(result.Skipped)),
	}
	for _, e := range rec.Entries() {
		output.Messages = append(output.Messages, mergeMessage{Kind: e.Kind.String(), Message: sanitizeText(e.Message)})
	}
	output.Appended = append(output.Appended, result.Appended...)
	for _, s := range result.Skipped {
		output.Skipped = append(output.Skipped, mergeSkipped{Path: s.Path, Reason: sanitizeError(s.Err)})
	}
	if result.Written() {
		output.WrittenTo = cleanPath
	}
	output.Summary = result.Summary()

	return nil, output, nil
}
