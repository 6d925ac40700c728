// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_FirstSet(t *testing.T) {
	_, ok := Field(0).FirstSet()
	assert.False(t, ok)

	pos, ok := Field(0).set(5).set(10).FirstSet()
	assert.True(t, ok)
	assert.Equal(t, 5, pos)
}

func TestField_FirstSetAtOrAfter(t *testing.T) {
	f := Field(0).set(3).set(40).set(59)

	tests := []struct {
		k       int
		wantPos int
		wantOk  bool
	}{
		{0, 3, true},
		{3, 3, true},
		{4, 40, true},
		{41, 59, true},
		{60, 0, false},
	}

	for _, tt := range tests {
		pos, ok := f.FirstSetAtOrAfter(tt.k)
		assert.Equal(t, tt.wantOk, ok, "k=%d", tt.k)
		if tt.wantOk {
			assert.Equal(t, tt.wantPos, pos, "k=%d", tt.k)
		}
	}
}

func TestField_IsZero(t *testing.T) {
	assert.True(t, Field(0).IsZero())
	assert.False(t, Field(0).set(0).IsZero())
}

func TestFullRange(t *testing.T) {
	f := fullRange(1, 3)
	assert.False(t, f.Test(0))
	assert.True(t, f.Test(1))
	assert.True(t, f.Test(2))
	assert.True(t, f.Test(3))
	assert.False(t, f.Test(4))
}
