package cache

import (
	"encoding/binary"
	"hash/crc32"
	"math"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Hasher is an incremental CRC-32 accumulator. Values are fed as little-endian bytes, so the hash
// of a sequence of fields is stable between runs and architectures.
type Hasher struct {
	crc     uint32
	scratch [8]byte
}

func (h *Hasher) Reset() {
	h.crc = 0
}

func (h *Hasher) Sum32() uint32 {
	return h.crc
}

func (h *Hasher) AddBytes(data []byte) {
	h.crc = crc32.Update(h.crc, castagnoli, data)
}

func (h *Hasher) AddUint8(value uint8) {
	h.scratch[0] = value
	h.AddBytes(h.scratch[:1])
}

func (h *Hasher) AddBool(value bool) {
	if value {
		h.AddUint8(1)
	} else {
		h.AddUint8(0)
	}
}

func (h *Hasher) AddUint32(value uint32) {
	binary.LittleEndian.PutUint32(h.scratch[:4], value)
	h.AddBytes(h.scratch[:4])
}

func (h *Hasher) AddInt(value int) {
	h.AddUint64(uint64(value))
}

func (h *Hasher) AddUint64(value uint64) {
	binary.LittleEndian.PutUint64(h.scratch[:8], value)
	h.AddBytes(h.scratch[:8])
}

func (h *Hasher) AddFloat32(value float32) {
	h.AddUint32(math.Float32bits(value))
}

func (h *Hasher) AddString(value string) {
	h.AddInt(len(value))
	h.AddBytes([]byte(value))
}

// Hashable keys know how to feed themselves into a Hasher
type Hashable interface {
	comparable
	Hash(h *Hasher)
}

// HashOf computes the 32-bit hash of a key
func HashOf[K Hashable](key K) uint32 {
	var h Hasher
	key.Hash(&h)
	return h.Sum32()
}
