package resolver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sduikit/sduitools/sduierrors"
)

const (
	// MaxFileSize is the maximum size (in bytes) allowed for schema files.
	// This prevents resource exhaustion from loading arbitrarily large files.
	// Set to 10MB which should be sufficient for any SDUI schema.
	MaxFileSize = 10 * 1024 * 1024 // 10MB

	// DefaultCacheSize is the number of parsed documents a DocumentCache
	// holds before evicting the least recently used entry.
	DefaultCacheSize = 128
)

// cachedDocument pairs a parsed document with the source file's modification
// time, used to invalidate entries when the file changes between runs.
type cachedDocument struct {
	doc     any
	modTime time.Time
}

// DocumentCache is a bounded LRU cache of parsed schema files, keyed by
// absolute path. Cached documents are shared by reference and must be
// treated as read-only; the resolver never mutates loaded documents, so a
// single cache may safely be shared across concurrent resolution runs.
type DocumentCache struct {
	entries *lru.Cache[string, cachedDocument]
}

// NewDocumentCache creates a cache holding up to size parsed documents.
// A size of zero or less uses DefaultCacheSize.
func NewDocumentCache(size int) (*DocumentCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, cachedDocument](size)
	if err != nil {
		return nil, err
	}
	return &DocumentCache{entries: entries}, nil
}

// documentLoader reads and parses JSON schema files, optionally through a
// shared DocumentCache. Load failures are reported as errors for the caller
// to degrade into stubs; only the root document's loader error is fatal.
type documentLoader struct {
	cache  *DocumentCache
	logger Logger
}

// load reads and parses the JSON document at path. With a cache configured,
// entries are keyed by absolute path and invalidated on mtime change.
func (l *documentLoader) load(path string) (any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &sduierrors.ParseError{Path: path, Message: "invalid file path", Cause: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &sduierrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
	}

	if l.cache != nil {
		if entry, ok := l.cache.entries.Get(abs); ok && entry.modTime.Equal(info.ModTime()) {
			l.logger.Debug("document cache hit", "path", abs)
			return entry.doc, nil
		}
	}

	if info.Size() > MaxFileSize {
		return nil, &sduierrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        MaxFileSize,
			Actual:       info.Size(),
			Message:      "schema file too large: " + path,
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &sduierrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &sduierrors.ParseError{Path: path, Message: "invalid JSON", Cause: err}
	}

	if l.cache != nil {
		l.cache.entries.Add(abs, cachedDocument{doc: doc, modTime: info.ModTime()})
	}
	l.logger.Debug("loaded document", "path", abs, "bytes", len(data))
	return doc, nil
}
