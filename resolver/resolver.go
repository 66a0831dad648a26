package resolver

import (
	"github.com/sduikit/sduitools/sduierrors"
)

const (
	// DefaultMaxDepth is the recursion ceiling applied when none is configured.
	DefaultMaxDepth = 50

	// DefaultDuplicateCap is the total number of occurrences (expansions plus
	// duplicate stubs counted at registration) allowed per component name.
	DefaultDuplicateCap = 3

	// CyclicDuplicateCap is the tighter cap applied to the known highly
	// cyclic component names.
	CyclicDuplicateCap = 2
)

// DefaultCyclicNames returns the component names capped at
// CyclicDuplicateCap by default. These are the SDUI components that
// reference themselves or each other indefinitely, so even the default cap
// would let output grow far too large.
func DefaultCyclicNames() []string {
	return []string{"LayoutElement", "LayoutElementContent", "Action"}
}

// Resolver expands $ref pointers in SDUI schema documents. A Resolver value
// carries configuration only; all per-run state is created inside Resolve,
// so a single Resolver is safe for concurrent use.
type Resolver struct {
	// MaxDepth is the recursion ceiling. Expansion at or beyond it becomes a
	// max_depth_reached stub. Zero means DefaultMaxDepth.
	MaxDepth int
	// WebOnly replaces components whose releaseVersion.web status is not
	// released (and not a version string) with not_web_released stubs.
	WebOnly bool
	// CyclicNames overrides the component names capped at
	// CyclicDuplicateCap. nil means DefaultCyclicNames(); an explicit empty
	// slice disables the tighter cap entirely.
	CyclicNames []string
	// Logger receives structured diagnostics. nil means no logging.
	Logger Logger
	// Cache is an optional shared read-only document cache. nil loads every
	// file on every use.
	Cache *DocumentCache
}

// New creates a new Resolver with default settings.
func New() *Resolver {
	return &Resolver{}
}

// ResolveResult contains the results of a resolution run.
type ResolveResult struct {
	// Document is the root document with every reachable $ref inlined or
	// stubbed, plus the "_metadata" key describing the run.
	Document map[string]any
	// SourcePath is the root file the run started from.
	SourcePath string
	// Metadata is the run report, also embedded in Document under "_metadata".
	Metadata *Metadata
}

// Resolve loads the root file and produces a fully (or partially, via stubs)
// inlined document. The only fatal condition is an unreadable or unparsable
// root file; every downstream failure degrades to a stub or an inline error
// marker so that a run always completes with output.
func (r *Resolver) Resolve(rootPath string) (*ResolveResult, error) {
	maxDepth := r.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxDepth < 0 {
		return nil, &sduierrors.ConfigError{Option: "max_depth", Value: r.MaxDepth, Message: "must be positive"}
	}

	logger := r.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	cyclic := make(map[string]bool)
	names := r.CyclicNames
	if names == nil {
		names = DefaultCyclicNames()
	}
	for _, name := range names {
		cyclic[name] = true
	}

	loader := &documentLoader{cache: r.Cache, logger: logger}

	rootDoc, err := loader.load(rootPath)
	if err != nil {
		return nil, err
	}
	rootMap, ok := rootDoc.(map[string]any)
	if !ok {
		return nil, &sduierrors.ParseError{Path: rootPath, Message: "root document must be a JSON object"}
	}

	ctx := &resolveContext{
		maxDepth: maxDepth,
		webOnly:  r.WebOnly,
		cyclic:   cyclic,
		tracker:  newComponentTracker(),
		loader:   loader,
		logger:   logger,
	}

	// The root registers as its own first occurrence before resolution, so a
	// self-referencing root counts against the duplicate cap from its first
	// re-encounter instead of being inlined once for free.
	rootName := componentName(rootMap, rootPath)
	ctx.tracker.register(rootName, RootPath)

	resolved := ctx.resolveSchema(rootMap, rootPath, rootDoc)
	out, ok := resolved.(map[string]any)
	if !ok {
		// resolveSchema rebuilds maps as maps; this cannot happen for a map root.
		out = map[string]any{}
	}

	md := ctx.buildMetadata(rootPath)
	out["_metadata"] = md.asMap()

	logger.Info("resolution complete",
		"source", rootPath,
		"resolutions", md.TotalResolutions,
		"stubs", md.TotalStubs,
		"unique_components", md.UniqueComponents)

	return &ResolveResult{Document: out, SourcePath: rootPath, Metadata: md}, nil
}
