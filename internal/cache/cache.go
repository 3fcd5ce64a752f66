package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for short-lived in-memory caching. The service
// keeps no durable state; implementations must be process-local.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from an arbitrary payload, typically the JSON
// encoding of an incident plus its fraud assessment.
func Key(payload []byte) string {
	hash := sha256.Sum256(payload)
	return "cortex:v1:" + hex.EncodeToString(hash[:])
}
