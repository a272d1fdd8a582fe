package cache_test

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/cache"
)

type testKey struct {
	a uint32
	b bool
}

func (k testKey) Hash(h *cache.Hasher) {
	h.AddUint32(k.a)
	h.AddBool(k.b)
}

// collidingKey hashes everything to the same bucket
type collidingKey struct {
	id int
}

func (k collidingKey) Hash(h *cache.Hasher) {}

func TestHasherMatchesCastagnoli(t *testing.T) {
	var h cache.Hasher
	h.AddBytes([]byte("pipeline"))
	h.AddBytes([]byte(" state"))

	require.Equal(t, crc32.Checksum([]byte("pipeline state"), crc32.MakeTable(crc32.Castagnoli)), h.Sum32())
}

func TestHasherFieldsAreOrderSensitive(t *testing.T) {
	require.NotEqual(t,
		cache.HashOf(testKey{a: 1, b: false}),
		cache.HashOf(testKey{a: 1, b: true}),
	)
	require.Equal(t,
		cache.HashOf(testKey{a: 7, b: true}),
		cache.HashOf(testKey{a: 7, b: true}),
	)
}

func TestCacheGetPut(t *testing.T) {
	c := cache.New[testKey, string]()

	_, ok := c.Get(testKey{a: 1})
	require.False(t, ok)

	c.Put(testKey{a: 1}, "one")
	c.Put(testKey{a: 2}, "two")

	value, ok := c.Get(testKey{a: 1})
	require.True(t, ok)
	require.Equal(t, "one", value)

	c.Put(testKey{a: 1}, "uno")
	value, ok = c.Get(testKey{a: 1})
	require.True(t, ok)
	require.Equal(t, "uno", value)

	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, c.Hits())
	require.Equal(t, 1, c.Misses())
}

func TestCacheCollisionsAreMisses(t *testing.T) {
	c := cache.New[collidingKey, int]()

	c.Put(collidingKey{id: 1}, 10)
	c.Put(collidingKey{id: 2}, 20)

	value, ok := c.Get(collidingKey{id: 2})
	require.True(t, ok)
	require.Equal(t, 20, value)

	_, ok = c.Get(collidingKey{id: 3})
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestCacheEvictFunc(t *testing.T) {
	c := cache.New[collidingKey, int]()
	for i := 0; i < 10; i++ {
		c.Put(collidingKey{id: i}, i)
	}
	other := cache.New[testKey, int]()
	other.Put(testKey{a: 1}, 1)

	evicted := c.EvictFunc(func(key collidingKey, value int) bool {
		return value%2 == 0
	})
	require.ElementsMatch(t, []int{0, 2, 4, 6, 8}, evicted)
	require.Equal(t, 5, c.Len())
	require.Equal(t, 5, c.Evictions())

	_, ok := c.Get(collidingKey{id: 4})
	require.False(t, ok)
	value, ok := c.Get(collidingKey{id: 5})
	require.True(t, ok)
	require.Equal(t, 5, value)

	require.ElementsMatch(t, []int{1, 3, 5, 7, 9}, c.Drain())
	require.Equal(t, 0, c.Len())
	require.Equal(t, 1, other.Len())
}
