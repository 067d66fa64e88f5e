package containers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueWrapsAround(t *testing.T) {
	q := NewRingQueue[int](3)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), ErrQueueFull)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(4))
	assert.Equal(t, []int{2, 3, 4}, q.Drain())
	assert.True(t, q.IsEmpty())
}

func TestRingQueueEmpty(t *testing.T) {
	q := NewRingQueue[string](2)
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	require.NoError(t, q.Enqueue("a"))
	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, q.Len())
}

func TestRingQueueProducerConsumer(t *testing.T) {
	q := NewRingQueue[int](8)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; {
			if q.Enqueue(i) == nil {
				i++
			}
		}
	}()

	got := make([]int, 0, 100)
	for len(got) < 100 {
		got = append(got, q.Drain()...)
	}
	wg.Wait()
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}
