// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package crond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByTime(t *testing.T) {
	now := time.Now()
	in := []JobSnapshot{
		{Lineno: 3, Time: now.Add(3 * time.Minute)},
		{Lineno: 1, Time: now.Add(time.Minute)},
		{Lineno: 2, Time: now.Add(2 * time.Minute)},
	}

	out := sortByTime(in)
	require := assert.New(t)
	require.Len(out, 3)
	require.Equal(1, out[0].Lineno)
	require.Equal(2, out[1].Lineno)
	require.Equal(3, out[2].Lineno)

	// Input slice is left untouched.
	require.Equal(3, in[0].Lineno)
}

func TestSortByTime_Empty(t *testing.T) {
	assert.Empty(t, sortByTime(nil))
}
