package command

const minQueueCap = 16

// Queue is an unbounded FIFO backed by a growable ring buffer.
// It has no locking: one producer context and one consumer per tick.
type Queue[T any] struct {
	buf      []T
	head     int
	size     int
	disposed bool
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{buf: make([]T, minQueueCap)}
}

// Enqueue appends v at the tail. It never blocks or fails.
// After Dispose the value is dropped.
func (q *Queue[T]) Enqueue(v T) {
	if q.disposed {
		return
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// TryDequeue removes and returns the head. ok is false when the queue is empty.
func (q *Queue[T]) TryDequeue() (v T, ok bool) {
	if q.size == 0 {
		return v, false
	}
	var zero T
	v = q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Len returns the number of pending entries.
func (q *Queue[T]) Len() int {
	return q.size
}

// Created reports whether the queue is usable (not disposed).
func (q *Queue[T]) Created() bool {
	return q != nil && !q.disposed
}

// Dispose drops pending entries and the backing storage.
func (q *Queue[T]) Dispose() {
	q.buf = nil
	q.head = 0
	q.size = 0
	q.disposed = true
}

func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n < minQueueCap {
		n = minQueueCap
	}
	next := make([]T, n)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
