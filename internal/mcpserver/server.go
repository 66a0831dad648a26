// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes sduitools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sduikit/sduitools"
	"github.com/sduikit/sduitools/resolver"
)

const serverInstructions = `sduitools MCP server — resolves server-driven UI schema references and reports per-platform release status.

Configuration: All defaults are configurable via SDUITOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SDUITOOLS_MAX_DEPTH (default: 50) — recursion ceiling for the resolve tool
- SDUITOOLS_WEB_ONLY (default: false) — stub out components not released on web by default
- SDUITOOLS_CACHE_SIZE (default: 128) — parsed-document cache capacity (entries)
- SDUITOOLS_CYCLIC_NAMES — comma-separated component names given a tighter duplicate cap

Caching: Parsed schema files are cached per session keyed by path+mtime, so repeated resolve calls over the same schema tree avoid re-reading unchanged files.`

// docCache is the session-wide parsed document cache shared by every
// resolve call. Built lazily so a bad SDUITOOLS_CACHE_SIZE surfaces as a
// tool error rather than a package init panic.
var (
	docCacheOnce sync.Once
	docCache     *resolver.DocumentCache
	docCacheErr  error
)

func sharedCache() (*resolver.DocumentCache, error) {
	docCacheOnce.Do(func() {
		docCache, docCacheErr = resolver.NewDocumentCache(cfg.CacheSize)
	})
	return docCache, docCacheErr
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "sduitools", Version: sduitools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve an SDUI schema file by recursively inlining its $ref references. Irresolvable references (missing files, depth ceiling, duplicate caps, web-release filtering) become stub nodes instead of errors. Returns run metadata — resolution counts, stub counts, unique components, and per-component navigation paths — and, with full=true, the complete resolved document. Defaults for max_depth and web_only are configurable via SDUITOOLS_MAX_DEPTH and SDUITOOLS_WEB_ONLY env vars.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compat",
		Description: "Report per-platform release status for every JSON schema under a directory. Platforms: web, ios, android. Use not_released=true to list only components that are not yet released on the platform.",
	}, handleCompat)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
