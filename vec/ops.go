// Copyright 2025 go-sincos Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import "math"

// This file provides the pure Go (scalar) implementations of all vector
// operations. They are the portable fallback for every build and are also
// what runs when SINCOS_NO_SIMD forces scalar mode.

// Load creates a vector by loading data from a slice.
// At most MaxLanes elements are read.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst, clamped to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// MaskLoad loads lanes from src only where the mask is true.
// Inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores lanes to dst only where the mask is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector with lanes set to 0, 1, 2, ...
func Iota[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates each lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs returns the absolute value of each lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			result[i] = -x
		} else {
			result[i] = x
		}
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum of two vectors.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum of two vectors.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MulAdd performs fused multiply-add: a*b + c with a single rounding.
// The scalar implementation uses math.FMA, which matches the rounding of
// hardware FMA instructions, so SIMD and scalar kernels built on MulAdd
// produce identical results.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(a.data), len(b.data)))
	result := make([]T, n)

	var zero T
	switch any(zero).(type) {
	case float32:
		aData := any(a.data).([]float32)
		bData := any(b.data).([]float32)
		cData := any(c.data).([]float32)
		rData := any(result).([]float32)
		for i := range n {
			rData[i] = float32(math.FMA(float64(aData[i]), float64(bData[i]), float64(cData[i])))
		}
	case float64:
		aData := any(a.data).([]float64)
		bData := any(b.data).([]float64)
		cData := any(c.data).([]float64)
		rData := any(result).([]float64)
		for i := range n {
			rData[i] = math.FMA(aData[i], bData[i], cData[i])
		}
	}
	return Vec[T]{data: result}
}

// Equal performs lane-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less performs lane-wise less-than comparison.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs lane-wise less-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater performs lane-wise greater-than comparison.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs lane-wise greater-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElse performs conditional selection.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Merge selects lanes from a where the mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// RoundToEven rounds to the nearest even integer (banker's rounding).
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)

	var zero T
	switch any(zero).(type) {
	case float32:
		vData := any(v.data).([]float32)
		rData := any(result).([]float32)
		for i := range n {
			rData[i] = float32(math.RoundToEven(float64(vData[i])))
		}
	case float64:
		vData := any(v.data).([]float64)
		rData := any(result).([]float64)
		for i := range n {
			rData[i] = math.RoundToEven(vData[i])
		}
	}
	return Vec[T]{data: result}
}

// ConvertToInt64 converts float64 to int64 (truncate toward zero).
// For values outside the int64 range, the result is undefined.
func ConvertToInt64(v Vec[float64]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i, x := range v.data {
		result[i] = int64(x)
	}
	return Vec[int64]{data: result}
}

// ConvertToFloat64 converts int64 to float64.
// Large int64 values may lose precision.
func ConvertToFloat64(v Vec[int64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, x := range v.data {
		result[i] = float64(x)
	}
	return Vec[float64]{data: result}
}

// AsInt64 reinterprets a float64 vector as int64 (bit cast).
func AsInt64(v Vec[float64]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i, x := range v.data {
		result[i] = int64(math.Float64bits(x))
	}
	return Vec[int64]{data: result}
}

// AsFloat64 reinterprets an int64 vector as float64 (bit cast).
func AsFloat64(v Vec[int64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64frombits(uint64(x))
	}
	return Vec[float64]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMax returns the maximum lane value.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	maxVal := v.data[0]
	for _, x := range v.data[1:] {
		if x > maxVal {
			maxVal = x
		}
	}
	return maxVal
}

// ReduceMin returns the minimum lane value.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	minVal := v.data[0]
	for _, x := range v.data[1:] {
		if x < minVal {
			minVal = x
		}
	}
	return minVal
}
