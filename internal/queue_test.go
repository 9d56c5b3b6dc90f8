package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	assert := assert.New(t)

	var q Queue[int64]
	assert.True(q.Empty())

	_, ok := q.Pop()
	assert.False(ok)

	q.Push(1, 2)
	q.Push(3)
	assert.Equal(3, q.Len())

	value, ok := q.Peek()
	assert.True(ok)
	assert.Equal(int64(1), value)

	dup := q.Clone()

	for _, expected := range []int64{1, 2, 3} {
		value, ok = q.Pop()
		assert.True(ok)
		assert.Equal(expected, value)
	}
	assert.True(q.Empty())

	// The clone keeps its own copy.
	assert.Equal(3, dup.Len())
	value, _ = dup.Pop()
	assert.Equal(int64(1), value)
}
