package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sduikit/sduitools/resolver"
)

type resolveInput struct {
	File        string   `json:"file"                   jsonschema:"Path to the root schema file to resolve"`
	MaxDepth    int      `json:"max_depth,omitempty"    jsonschema:"Recursion ceiling (default 50, configurable via SDUITOOLS_MAX_DEPTH)"`
	WebOnly     *bool    `json:"web_only,omitempty"     jsonschema:"Stub out components not released on web"`
	CyclicNames []string `json:"cyclic_names,omitempty" jsonschema:"Component names given the tighter duplicate cap (replaces the built-in set)"`
	Full        bool     `json:"full,omitempty"         jsonschema:"Include the complete resolved document in the output (can be large)"`
}

type resolveNavigation struct {
	Name      string   `json:"name"`
	FirstPath string   `json:"first_path"`
	Count     int      `json:"count"`
	Paths     []string `json:"paths,omitempty"`
}

type resolveOutput struct {
	SourcePath       string              `json:"source_path"`
	TotalResolutions int                 `json:"total_resolutions"`
	TotalStubs       int                 `json:"total_stubs"`
	UniqueComponents int                 `json:"unique_components"`
	Navigation       []resolveNavigation `json:"navigation,omitempty"`
	Document         map[string]any      `json:"document,omitempty"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	// Apply config defaults when input fields are omitted.
	maxDepth := cfg.MaxDepth
	if input.MaxDepth > 0 {
		maxDepth = input.MaxDepth
	}
	webOnly := cfg.WebOnly
	if input.WebOnly != nil {
		webOnly = *input.WebOnly
	}
	cyclicNames := cfg.CyclicNames
	if input.CyclicNames != nil {
		cyclicNames = input.CyclicNames
	}

	cache, err := sharedCache()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	opts := []resolver.Option{
		resolver.WithFilePath(input.File),
		resolver.WithMaxDepth(maxDepth),
		resolver.WithWebOnly(webOnly),
		resolver.WithCache(cache),
	}
	if cyclicNames != nil {
		opts = append(opts, resolver.WithCyclicNames(cyclicNames))
	}

	result, err := resolver.ResolveWithOptions(opts...)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	md := result.Metadata
	output := resolveOutput{
		SourcePath:       md.SourcePath,
		TotalResolutions: md.TotalResolutions,
		TotalStubs:       md.TotalStubs,
		UniqueComponents: md.UniqueComponents,
	}
	output.Navigation = make([]resolveNavigation, 0, len(md.Navigation))
	for name, entry := range md.Navigation {
		output.Navigation = append(output.Navigation, resolveNavigation{
			Name:      name,
			FirstPath: entry.FirstPath,
			Count:     entry.Count,
			Paths:     entry.Paths,
		})
	}
	sortNavigation(output.Navigation)

	if input.Full {
		output.Document = result.Document
	}
	return nil, output, nil
}

// sortNavigation orders entries by occurrence count descending, ties broken
// alphabetically by name, so the most-referenced components come first.
func sortNavigation(entries []resolveNavigation) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
}
