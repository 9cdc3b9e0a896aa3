// Package cache stores rendered poster bytes on disk under content-addressed
// paths. Keys embed the business's last-update timestamp, so edits to
// business data rotate the key and orphan the stale file; there is no
// explicit eviction and no TTL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/snowflake"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
)

// FileCache is a single-process, file-system-backed render cache. No
// locking: concurrent misses for one key may both render and both write,
// and the second write wins. Renders for identical inputs are
// byte-identical, so the race is harmless.
type FileCache struct {
	root string
}

func New(root string) *FileCache {
	return &FileCache{root: root}
}

// Root returns the cache root directory.
func (c *FileCache) Root() string { return c.root }

// Key derives the 16-hex-char content digest for one render tuple. The same
// tuple always yields the same key; changing any element, including the
// update timestamp, yields a different one. Nanosecond precision on the
// timestamp keeps two updates inside one second from reusing a key. Callers
// resolve the effective variant before keying, so templates that ignore the
// variant cache one entry, not two.
func Key(businessID snowflake.ID, templateID string, size posterdomain.PaperSize, format posterdomain.Format, variant posterdomain.Variant, updatedAt time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d-%s-%s-%s-%s-%s",
		businessID, templateID, size, format, variant, updatedAt.UTC().Format(time.RFC3339Nano))))
	return hex.EncodeToString(sum[:])[:16]
}

// Path returns the cache file path for one render tuple, nested under a
// per-business directory.
func (c *FileCache) Path(businessID snowflake.ID, templateID string, size posterdomain.PaperSize, format posterdomain.Format, variant posterdomain.Variant, updatedAt time.Time) string {
	key := Key(businessID, templateID, size, format, variant, updatedAt)
	name := fmt.Sprintf("%s-%s-%s.%s", templateID, size, key, format)
	return filepath.Join(c.root, businessID.String(), name)
}

// Read returns the cached bytes, or (nil, nil) when the file does not exist.
// A miss is a normal outcome, not an error.
func (c *FileCache) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write persists rendered bytes, creating parent directories as needed.
func (c *FileCache) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
