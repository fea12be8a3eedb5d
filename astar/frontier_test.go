package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(q *frontier) []int {
	var out []int
	for q.Len() > 0 {
		out = append(out, q.popMin())
	}
	return out
}

// TestFrontier_OrderAndTies pops by ascending f, FIFO among equal f.
func TestFrontier_OrderAndTies(t *testing.T) {
	q := newFrontier(6)
	q.push(0, 5)
	q.push(1, 5)
	q.push(2, 3)
	q.push(3, 5)
	q.push(4, 1)

	assert.Equal(t, []int{4, 2, 0, 1, 3}, drain(q))
	for idx := 0; idx < 6; idx++ {
		assert.False(t, q.contains(idx))
	}
}

// TestFrontier_Update covers decrease-key and the fresh tie-break sequence.
func TestFrontier_Update(t *testing.T) {
	q := newFrontier(3)
	q.push(0, 9)
	q.push(1, 5)
	q.update(0, 1)
	assert.Equal(t, 2, q.Len(), "update re-inserts without duplicating")
	assert.True(t, q.contains(0))
	assert.Equal(t, []int{0, 1}, drain(q))

	// equal f after update: the updated cell now counts as inserted last
	q.push(0, 5)
	q.push(1, 5)
	q.push(2, 5)
	q.update(0, 5)
	assert.Equal(t, []int{1, 2, 0}, drain(q))
}

// TestFrontier_Remove drops an arbitrary member and keeps the rest ordered.
func TestFrontier_Remove(t *testing.T) {
	q := newFrontier(5)
	for idx, f := range []int{4, 2, 8, 1, 6} {
		q.push(idx, f)
	}
	require.True(t, q.contains(1))

	q.remove(1)
	q.remove(1) // no-op once gone
	assert.False(t, q.contains(1))
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, []int{3, 0, 4, 2}, drain(q))
}
