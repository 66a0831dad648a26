package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sduikit/sduitools/release"
)

type compatInput struct {
	Dir         string `json:"dir"                    jsonschema:"Directory to scan recursively for .json schema files"`
	Platform    string `json:"platform,omitempty"     jsonschema:"Platform to report on: web, ios, or android (default web)"`
	NotReleased bool   `json:"not_released,omitempty" jsonschema:"List only components that are not released on the platform"`
}

type compatComponent struct {
	File     string `json:"file"`
	Name     string `json:"name,omitempty"`
	Status   string `json:"status"`
	Released bool   `json:"released"`
}

type compatOutput struct {
	Platform      string            `json:"platform"`
	Total         int               `json:"total"`
	ReleasedCount int               `json:"released_count"`
	Components    []compatComponent `json:"components,omitempty"`
}

func handleCompat(_ context.Context, _ *mcp.CallToolRequest, input compatInput) (*mcp.CallToolResult, compatOutput, error) {
	platform := release.PlatformWeb
	switch input.Platform {
	case "", string(release.PlatformWeb):
	case string(release.PlatformIOS):
		platform = release.PlatformIOS
	case string(release.PlatformAndroid):
		platform = release.PlatformAndroid
	default:
		return errResult(fmt.Errorf("invalid platform %q; valid platforms: web, ios, android", input.Platform)), compatOutput{}, nil
	}

	report, err := release.ScanDir(input.Dir, platform)
	if err != nil {
		return errResult(err), compatOutput{}, nil
	}

	output := compatOutput{
		Platform:      string(report.Platform),
		Total:         report.Total,
		ReleasedCount: report.ReleasedCount,
	}
	for _, c := range report.Components {
		if input.NotReleased && c.Released {
			continue
		}
		output.Components = append(output.Components, compatComponent{
			File:     c.File,
			Name:     c.Name,
			Status:   c.Status,
			Released: c.Released,
		})
	}
	return nil, output, nil
}
