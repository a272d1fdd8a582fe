package cache

import (
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

type entry[K Hashable, V any] struct {
	key   K
	value V
}

// Cache maps logical state to compiled native objects. Entries are found by the 32-bit hash of
// their key, and the full key is compared on every hit so that a hash collision can only cause a
// miss.
type Cache[K Hashable, V any] struct {
	buckets *swiss.Map[uint32, []entry[K, V]]
	count   int

	hits       int
	misses     int
	collisions int
	evictions  int
}

func New[K Hashable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		buckets: swiss.NewMap[uint32, []entry[K, V]](42),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	hash := HashOf(key)

	bucket, ok := c.buckets.Get(hash)
	if ok {
		for _, e := range bucket {
			if e.key == key {
				c.hits++
				return e.value, true
			}
		}
		c.collisions++
	}

	c.misses++
	var zero V
	return zero, false
}

// Put inserts or replaces the value for key
func (c *Cache[K, V]) Put(key K, value V) {
	hash := HashOf(key)

	bucket, _ := c.buckets.Get(hash)
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}

	c.buckets.Put(hash, append(bucket, entry[K, V]{key: key, value: value}))
	c.count++
}

// EvictFunc removes every entry for which evict returns true and returns the removed values
func (c *Cache[K, V]) EvictFunc(evict func(key K, value V) bool) []V {
	type change struct {
		hash   uint32
		bucket []entry[K, V]
	}

	var evicted []V
	var changes []change
	c.buckets.Iter(func(hash uint32, bucket []entry[K, V]) bool {
		kept := make([]entry[K, V], 0, len(bucket))
		for _, e := range bucket {
			if evict(e.key, e.value) {
				evicted = append(evicted, e.value)
			} else {
				kept = append(kept, e)
			}
		}

		if len(kept) != len(bucket) {
			changes = append(changes, change{hash: hash, bucket: kept})
		}
		return false
	})

	for _, ch := range changes {
		if len(ch.bucket) == 0 {
			c.buckets.Delete(ch.hash)
		} else {
			c.buckets.Put(ch.hash, ch.bucket)
		}
	}

	c.count -= len(evicted)
	c.evictions += len(evicted)
	return evicted
}

// Drain removes every entry and returns the values
func (c *Cache[K, V]) Drain() []V {
	return c.EvictFunc(func(K, V) bool { return true })
}

func (c *Cache[K, V]) Len() int {
	return c.count
}

func (c *Cache[K, V]) Hits() int {
	return c.hits
}

func (c *Cache[K, V]) Misses() int {
	return c.misses
}

func (c *Cache[K, V]) Evictions() int {
	return c.evictions
}

func (c *Cache[K, V]) PrintJson(json *jwriter.ObjectState) {
	json.Name("Entries").Int(c.count)
	json.Name("Hits").Int(c.hits)
	json.Name("Misses").Int(c.misses)
	json.Name("Collisions").Int(c.collisions)
	json.Name("Evictions").Int(c.evictions)
}
