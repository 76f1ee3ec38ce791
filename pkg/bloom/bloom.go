// Package bloom implements a Bloom filter: approximate set membership
// with tunable false-positive rate and no false negatives.
//
// Bit-array size m and hash count k are derived from the expected item
// count and target false-positive rate with the standard formulas
// m = -n*ln(p)/ln(2)^2 and k = (m/n)*ln(2). Membership hashing uses
// FNV-64a double hashing: index_i = h1 + i*h2 mod m.
package bloom

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/bits"
)

// DefaultFalsePositiveRate is used when the caller does not pick one.
const DefaultFalsePositiveRate = 0.01

const bitsPerWord = 64

// Filter is a fixed-size Bloom filter over string items.
type Filter struct {
	words []uint64
	m     uint64
	k     uint64
	count int
}

// Stats is a point-in-time snapshot of the filter.
type Stats struct {
	Bits      uint64  `json:"bits"`
	HashFuncs uint64  `json:"hash_funcs"`
	ItemCount int     `json:"item_count"`
	SetBits   uint64  `json:"set_bits"`
	FillRatio float64 `json:"fill_ratio"`
}

// New returns a filter sized for expectedItems at the default
// false-positive rate.
func New(expectedItems int) (*Filter, error) {
	return NewWithRate(expectedItems, DefaultFalsePositiveRate)
}

// NewWithRate returns a filter sized for expectedItems at the given
// target false-positive rate. expectedItems must be positive and
// fpRate must lie strictly between 0 and 1.
func NewWithRate(expectedItems int, fpRate float64) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, fmt.Errorf("bloom: expected items must be positive, got %d", expectedItems)
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, fmt.Errorf("bloom: false-positive rate must be in (0, 1), got %g", fpRate)
	}
	m := optimalBits(uint64(expectedItems), fpRate)
	k := optimalHashes(m, uint64(expectedItems))
	numWords := (m + bitsPerWord - 1) / bitsPerWord
	return &Filter{
		words: make([]uint64, numWords),
		m:     m,
		k:     k,
	}, nil
}

func optimalBits(n uint64, p float64) uint64 {
	m := -float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)
	return uint64(math.Ceil(m))
}

func optimalHashes(m, n uint64) uint64 {
	k := float64(m) / float64(n) * math.Ln2
	if k < 1 {
		return 1
	}
	return uint64(math.Ceil(k))
}

// Add sets the k bits for item. The item counter is statistics only.
func (f *Filter) Add(item string) {
	h1, h2 := f.hashes(item)
	for i := uint64(0); i < f.k; i++ {
		idx := (h1 + i*h2) % f.m
		f.words[idx>>6] |= 1 << (idx & 63)
	}
	f.count++
}

// MightContain reports whether all k bits for item are set. A true
// result may be a false positive; a false result is definite.
func (f *Filter) MightContain(item string) bool {
	h1, h2 := f.hashes(item)
	for i := uint64(0); i < f.k; i++ {
		idx := (h1 + i*h2) % f.m
		if f.words[idx>>6]&(1<<(idx&63)) == 0 {
			return false
		}
	}
	return true
}

// Clear resets every bit and the item counter.
func (f *Filter) Clear() {
	for i := range f.words {
		f.words[i] = 0
	}
	f.count = 0
}

// Count returns the number of Add calls since construction or Clear.
func (f *Filter) Count() int { return f.count }

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.setBits()) / float64(f.m)
}

// Stats returns sizing and fill information.
func (f *Filter) Stats() Stats {
	set := f.setBits()
	return Stats{
		Bits:      f.m,
		HashFuncs: f.k,
		ItemCount: f.count,
		SetBits:   set,
		FillRatio: float64(set) / float64(f.m),
	}
}

func (f *Filter) setBits() uint64 {
	var set uint64
	for _, word := range f.words {
		set += uint64(bits.OnesCount64(word))
	}
	return set
}

// hashes derives the two base hashes for double hashing. h2 is forced
// odd so the probe sequence covers the whole array.
func (f *Filter) hashes(item string) (uint64, uint64) {
	h := fnv.New64a()
	h.Write([]byte(item))
	h1 := h.Sum64()

	h.Reset()
	h.Write([]byte{59})
	h.Write([]byte(item))
	h2 := h.Sum64()

	return h1, h2 | 1
}
