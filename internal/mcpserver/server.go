// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes pdfmerge as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdfmerge/pdfmerge"
)

const serverInstructions = `pdfmerge MCP server. Lists and merges PDF files on the local filesystem.

Select inputs with files (explicit paths), from_list (a text file of paths), or dir + pattern (glob, default *.pdf). When more than one is given, files take precedence over from_list, which takes precedence over dir + pattern. Use list_pdfs first to preview the resolved order, then merge_pdfs with the same arguments. merge_pdfs never prompts; inputs that are missing or not valid PDFs are skipped and reported.

Configuration via environment variables in your MCP client config:
- PDFMERGE_MAX_INPUTS (default: 500): maximum PDFs per call
- PDFMERGE_LIST_LIMIT (default: 100): default page size for list_pdfs
- PDFMERGE_MAX_LIMIT (default: 1000): maximum page size for list_pdfs
- PDFMERGE_STRICT (default: false): strict PDF validation for merge_pdfs`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "pdfmerge", Version: pdfmerge.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_pdfs",
		Description: "Resolve and optionally sort PDF inputs without merging. Returns the ordered paths that merge_pdfs would append, and which source (files, manifest, pattern) produced them. Use offset/limit to page through long listings.",
	}, handleListPDFs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_pdfs",
		Description: "Merge PDF inputs into a single output PDF (default merged.pdf, overwritten if present). Inputs that are missing or fail to parse are skipped and listed with the reason. Returns page counts and the status lines a terminal user would see. Strict validation default is configurable via PDFMERGE_STRICT.",
	}, handleMergePDFs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return sanitizeText(err.Error())
}

func sanitizeText(s string) string {
	return pathPattern.ReplaceAllString(s, "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
