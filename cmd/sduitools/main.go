package main

import (
	"fmt"
	"os"

	sduitools "github.com/sduikit/sduitools"
	"github.com/sduikit/sduitools/cmd/sduitools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("sduitools v%s\n", sduitools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "resolve":
		if err := commands.HandleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compat":
		if err := commands.HandleCompat(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every dispatchable command for typo suggestions.
var knownCommands = []string{"resolve", "compat", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`sduitools - Server-Driven UI Schema Tools

Usage:
  sduitools <command> [options]

Commands:
  resolve     Inline every $ref in an SDUI schema file
  compat      Report per-platform release status for a schema directory
  mcp         Serve sduitools as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  sduitools resolve Screen.json
  sduitools resolve --web-only --max-depth 30 -o resolved.json Screen.json
  sduitools compat --platform web ./schemas
  sduitools mcp

Run 'sduitools <command> --help' for more information on a command.`)
}
