package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sduikit/sduitools/release"
)

// CompatFlags contains flags for the compat command
type CompatFlags struct {
	Platform     string
	Format       string
	NotReleased  bool
	Quiet        bool
}

// SetupCompatFlags creates and configures a FlagSet for the compat command.
func SetupCompatFlags() (*flag.FlagSet, *CompatFlags) {
	fs := flag.NewFlagSet("compat", flag.ContinueOnError)
	flags := &CompatFlags{}

	fs.StringVar(&flags.Platform, "platform", string(release.PlatformWeb), "platform to report on: web, ios, or android")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NotReleased, "not-released", false, "list only components that are not released")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary line")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: sduitools compat [flags] <dir>\n\n")
		Writef(fs.Output(), "Report per-platform release status for every schema under a directory.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  sduitools compat ./schemas\n")
		Writef(fs.Output(), "  sduitools compat --platform ios ./schemas\n")
		Writef(fs.Output(), "  sduitools compat --not-released --format json ./schemas\n")
	}

	return fs, flags
}

// validPlatform reports whether p names a known platform.
func validPlatform(p string) bool {
	switch release.Platform(p) {
	case release.PlatformWeb, release.PlatformIOS, release.PlatformAndroid:
		return true
	}
	return false
}

// HandleCompat executes the compat command
func HandleCompat(args []string) error {
	fs, flags := SetupCompatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("compat command requires exactly one directory path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if !validPlatform(flags.Platform) {
		return fmt.Errorf("invalid platform '%s'. Valid platforms: web, ios, android", flags.Platform)
	}

	dir := fs.Arg(0)
	report, err := release.ScanDir(dir, release.Platform(flags.Platform))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	if flags.NotReleased {
		filtered := report.Components[:0:0]
		for _, c := range report.Components {
			if !c.Released {
				filtered = append(filtered, c)
			}
		}
		report.Components = filtered
	}

	if flags.Format != FormatText {
		return OutputStructured(report, flags.Format)
	}

	for _, c := range report.Components {
		status := c.Status
		if status == "" {
			status = "(none)"
		}
		name := c.Name
		if name == "" {
			name = "-"
		}
		Writef(os.Stdout, "%-40s %-30s %s\n", c.File, name, status)
	}
	if !flags.Quiet {
		Writef(os.Stderr, "Platform: %s\n", report.Platform)
		Writef(os.Stderr, "Schemas: %d\n", report.Total)
		Writef(os.Stderr, "Released: %d\n", report.ReleasedCount)
	}

	return nil
}
