package thermo

import (
	"encoding/hex"
	"sync"

	"lukechampine.com/blake3"
)

// cache memoizes melting-temperature evaluations keyed by a compact hash
// of their input rather than the raw (potentially long) sequence, so that
// cache keys stay a fixed size no matter how long a candidate primer is.
// This is purely an identity-compaction trick, not a security boundary:
// nothing here treats the hash as unguessable or tamper-evident.
type cache struct {
	mu     sync.Mutex
	values map[string]float64
}

func newCache() *cache {
	return &cache{values: make(map[string]float64)}
}

func hashKey(parts ...string) string {
	hasher := blake3.New(16, nil)
	for i, part := range parts {
		if i > 0 {
			hasher.Write([]byte{0})
		}
		hasher.Write([]byte(part))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// singleton returns the cached value for key, computing and storing it via
// compute on first request.
func (c *cache) singleton(key string, compute func() float64) float64 {
	hashed := hashKey(key)

	c.mu.Lock()
	if v, ok := c.values[hashed]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	c.values[hashed] = v
	c.mu.Unlock()
	return v
}

// pairSingleton is like singleton but for operations over an ordered pair
// of sequences (heterodimer Tm), where a and b are not interchangeable.
func (c *cache) pairSingleton(a, b string, compute func() float64) float64 {
	return c.singleton(hashKey(a, b), func() float64 { return compute() })
}
