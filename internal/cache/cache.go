// Package cache memoizes parsed statement corpora so repeated encodes of
// the same file skip the JSON parse and normalization pass.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/verdipratama/indra/internal/model"
)

// Cache defines the interface for corpus caching
type Cache interface {
	Get(key string) ([]model.Statement, bool)
	Set(key string, stmts []model.Statement, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key derives a cache key from a corpus path and its modification time,
// so an edited file never serves a stale parse
func Key(path string, modTime time.Time) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", path, modTime.UnixNano())))
	return "indra:v1:" + hex.EncodeToString(hash[:])
}
