// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cron

import "math/bits"

// A Field is a 64-bit mask over small integer positions: bit i set means
// "position i is allowed". Minutes, hours, days of month, months and
// weekdays are each represented as one Field.
type Field uint64

// fullRange returns a Field with every bit in [min, max] set.
func fullRange(min, max int) Field {
	var f Field
	for i := min; i <= max; i++ {
		f = f.set(i)
	}
	return f
}

func (f Field) set(i int) Field {
	return f | 1<<uint(i)
}

// Test reports whether bit i is set.
func (f Field) Test(i int) bool {
	return f&(1<<uint(i)) != 0
}

// IsZero reports whether no bit is set.
func (f Field) IsZero() bool {
	return f == 0
}

// FirstSet returns the position of the lowest set bit.
// The zero Field has no set bit; ok is false in that case.
func (f Field) FirstSet() (pos int, ok bool) {
	if f == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(f)), true
}

// FirstSetAtOrAfter returns the position of the lowest set bit at or
// after k, or ok == false if no such bit exists.
func (f Field) FirstSetAtOrAfter(k int) (pos int, ok bool) {
	if k <= 0 {
		return f.FirstSet()
	}
	if k >= 64 {
		return 0, false
	}
	masked := uint64(f) &^ (1<<uint(k) - 1)
	if masked == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(masked), true
}
