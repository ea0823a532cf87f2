// Package vec provides a small portable SIMD vector layer with runtime CPU
// dispatch. It is the data-parallel substrate for the trig kernels in this
// module: write a kernel once against Vec and it runs at whatever lane width
// the host CPU offers, falling back to scalar code everywhere else.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-sincos/vec"
//
//	a := vec.Load(angles)
//	b := vec.Load(shifts)
//	r := vec.Sub(a, b)
//	vec.Store(r, out)
//
// Lane width is fixed at init time from CPU detection (see CurrentLevel) and
// can be forced to scalar with the SINCOS_NO_SIMD environment variable.
package vec

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice
// sized to the current lane count; architecture-specific kernels bypass it
// and work on raw machine vectors directly.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Intended for tests; not for performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst, clamped to len(dst).
// This is the method form of the vec.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Mask is the result of a lane-wise comparison. It selects lanes in Merge,
// MaskLoad, and MaskStore.
//
// Mask instances should not be created directly; use comparisons such as
// Equal, Less, or Greater, or TailMask for remainder handling.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if every lane in the mask is active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
