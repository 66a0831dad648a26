package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sduikit/sduitools/resolver"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Output      string
	Format      string
	MaxDepth    int
	WebOnly     bool
	CyclicNames string
	Quiet       bool
	Verbose     bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.IntVar(&flags.MaxDepth, "max-depth", resolver.DefaultMaxDepth, "recursion ceiling for $ref expansion")
	fs.BoolVar(&flags.WebOnly, "web-only", false, "stub out components not released on web")
	fs.StringVar(&flags.CyclicNames, "cyclic-names", "", "comma-separated component names capped at the tighter duplicate limit (default: built-in set)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no summary")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every load and stub substitution to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: sduitools resolve [flags] <file>\n\n")
		Writef(fs.Output(), "Inline every $ref in an SDUI schema file.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nBounded Expansion:\n")
		Writef(fs.Output(), "  - Each named component is fully expanded at most %d times\n", resolver.DefaultDuplicateCap)
		Writef(fs.Output(), "    (%d for the highly cyclic names); later occurrences become stubs\n", resolver.CyclicDuplicateCap)
		Writef(fs.Output(), "  - Expansion past --max-depth becomes a max_depth_reached stub\n")
		Writef(fs.Output(), "  - Missing or unparsable referenced files become stubs; only an\n")
		Writef(fs.Output(), "    unreadable root file is fatal\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  sduitools resolve Screen.json\n")
		Writef(fs.Output(), "  sduitools resolve -o resolved.json Screen.json\n")
		Writef(fs.Output(), "  sduitools resolve --web-only --format yaml Screen.json\n")
		Writef(fs.Output(), "  sduitools resolve -q Screen.json > resolved.json\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Resolution completed (possibly with stubs; see summary)\n")
		Writef(fs.Output(), "  1    Root file missing or not valid JSON\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one file path")
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	rootPath := fs.Arg(0)

	opts := []resolver.Option{
		resolver.WithFilePath(rootPath),
		resolver.WithMaxDepth(flags.MaxDepth),
		resolver.WithWebOnly(flags.WebOnly),
	}
	if flags.CyclicNames != "" {
		names := strings.Split(flags.CyclicNames, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		opts = append(opts, resolver.WithCyclicNames(names))
	}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, resolver.WithLogger(resolver.NewSlogAdapter(slog.New(handler))))
	}

	result, err := resolver.ResolveWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", rootPath, err)
	}

	data, err := MarshalDocument(result.Document, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling resolved document: %w", err)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{rootPath}); err != nil {
			return err
		}
		cleaned := filepath.Clean(flags.Output)
		if err := RejectSymlinkOutput(cleaned); err != nil {
			return err
		}
		if err := os.WriteFile(cleaned, data, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		fmt.Println(string(data))
	}

	if !flags.Quiet {
		md := result.Metadata
		Writef(os.Stderr, "Resolutions: %d\n", md.TotalResolutions)
		Writef(os.Stderr, "Stubs: %d\n", md.TotalStubs)
		Writef(os.Stderr, "Unique Components: %d\n", md.UniqueComponents)
	}

	return nil
}
