package mcpserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdfmerge/pdfmerge/report"
)

type listInput struct {
	Inputs sourceInput `json:"inputs,omitempty" jsonschema:"Which PDFs to list"`
	Offset int         `json:"offset,omitempty" jsonschema:"Skip the first N paths"`
	Limit  int         `json:"limit,omitempty"  jsonschema:"Maximum number of paths to return"`
}

type listOutput struct {
	Source   string   `json:"source"`
	Sort     string   `json:"sort,omitempty"`
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Paths    []string `json:"paths,omitempty"`
	Summary  string   `json:"summary"`
}

func handleListPDFs(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	res, err := input.Inputs.resolve(report.Nop{})
	if err != nil {
		return errResult(err), listOutput{}, nil
	}

	output := listOutput{
		Source: string(res.kind),
		Total:  len(res.paths),
		Paths:  paginate(res.paths, input.Offset, input.Limit),
	}
	if !res.spec.IsZero() {
		output.Sort = res.spec.String()
	}
	output.Returned = len(output.Paths)
	output.Summary = buildListSummary(output)

	return nil, output, nil
}

func buildListSummary(output listOutput) string {
	if output.Total == 0 {
		return "No PDFs found."
	}
	summary := "Found " + strconv.Itoa(output.Total) + " PDFs to merge from " + output.Source
	if output.Sort != "" {
		summary += ", sorted by " + output.Sort
	}
	summary += "."
	if output.Returned < output.Total {
		summary += " Showing " + strconv.Itoa(output.Returned) + "."
	}
	return summary
}
