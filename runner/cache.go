package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/bernborgess/carcara/euf"
	"github.com/bernborgess/carcara/solver"
)

// Cache memoizes verdicts by script content. Entries are keyed by the
// SHA-256 of the file bytes, so renaming or touching a file never
// invalidates its verdict while editing it always does.
type Cache struct {
	path string

	mu      sync.Mutex
	entries map[string]cacheEntry
	dirty   bool
}

type cacheEntry struct {
	Status   string   `cbor:"status"`
	Verdicts []string `cbor:"verdicts"`
}

// OpenCache loads the cache at path, or starts an empty one when the
// file does not exist.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]cacheEntry)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := cbor.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Get returns the cached summary for the script at path, keyed by its
// current content.
func (c *Cache) Get(path string) (*solver.Summary, bool) {
	key, err := contentKey(path)
	if err != nil {
		return nil, false
	}
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}
	summary := &solver.Summary{Name: path, Status: entry.Status}
	for _, v := range entry.Verdicts {
		summary.Verdicts = append(summary.Verdicts, parseResult(v))
	}
	return summary, true
}

// Put records the summary for the script at path.
func (c *Cache) Put(path string, summary *solver.Summary) error {
	key, err := contentKey(path)
	if err != nil {
		return err
	}
	entry := cacheEntry{Status: summary.Status}
	for _, v := range summary.Verdicts {
		entry.Verdicts = append(entry.Verdicts, v.String())
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.dirty = true
	c.mu.Unlock()
	return nil
}

// Save writes the cache back to disk if it changed.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	data, err := cbor.Marshal(c.entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func contentKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func parseResult(s string) euf.Result {
	switch s {
	case "sat":
		return euf.Sat
	case "unsat":
		return euf.Unsat
	}
	return euf.Unknown
}
