package vec

import "testing"

func TestTailMask(t *testing.T) {
	lanes := MaxLanes[float64]()

	for count := 0; count <= lanes; count++ {
		mask := TailMask[float64](count)
		if got := mask.CountTrue(); got != count {
			t.Errorf("TailMask(%d): CountTrue got %d, want %d", count, got, count)
		}
		for i := 0; i < mask.NumLanes(); i++ {
			want := i < count
			if mask.GetBit(i) != want {
				t.Errorf("TailMask(%d): bit %d got %v, want %v", count, i, mask.GetBit(i), want)
			}
		}
	}
}

func TestTailMaskClamps(t *testing.T) {
	lanes := MaxLanes[float64]()

	if got := TailMask[float64](lanes + 5).CountTrue(); got != lanes {
		t.Errorf("TailMask over lane count: got %d true bits, want %d", got, lanes)
	}
	if got := TailMask[float64](-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1): got %d true bits, want 0", got)
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float64]()

	// Sizes around the lane boundary: empty, sub-vector, exact multiples,
	// and multiples plus a remainder.
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes - 1, 3 * lanes, 100}
	for _, size := range sizes {
		visited := make([]int, size)

		ProcessWithTail[float64](size,
			func(idx int) {
				for i := idx; i < idx+lanes; i++ {
					visited[i]++
				}
			},
			func(idx, count int) {
				for i := idx; i < idx+count; i++ {
					visited[i]++
				}
			})

		for i, n := range visited {
			if n != 1 {
				t.Errorf("size %d: index %d visited %d times, want 1", size, i, n)
			}
		}
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[float64]()

	cases := []struct {
		size, want int
	}{
		{0, 0},
		{1, lanes},
		{lanes, lanes},
		{lanes + 1, 2 * lanes},
		{2*lanes - 1, 2 * lanes},
		{2 * lanes, 2 * lanes},
	}
	for _, c := range cases {
		if got := AlignedSize[float64](c.size); got != c.want {
			t.Errorf("AlignedSize(%d): got %d, want %d", c.size, got, c.want)
		}
	}

	if !IsAligned[float64](2 * lanes) {
		t.Errorf("IsAligned(%d): got false, want true", 2*lanes)
	}
	if lanes > 1 && IsAligned[float64](lanes+1) {
		t.Errorf("IsAligned(%d): got true, want false", lanes+1)
	}
}
