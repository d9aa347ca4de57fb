package tsp

import "math/bits"

// Mask is a visited set: bit i set means city i is already on the partial tour.
type Mask uint32

// Bit returns the singleton set {city}.
func Bit(city int) Mask {
	return Mask(1) << uint(city)
}

// FullMask returns the set of all n cities, (1<<n)-1.
func FullMask(n int) Mask {
	return Mask(1)<<uint(n) - 1
}

// Has reports whether city is in m.
func (m Mask) Has(city int) bool {
	return m&Bit(city) != 0
}

// With returns m ∪ {city}.
func (m Mask) With(city int) Mask {
	return m | Bit(city)
}

// Count returns |m|.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}
