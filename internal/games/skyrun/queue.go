package skyrun

// ObjectQueue is the ordered sequence of live objects.
// New objects are appended at the tail in spawn order; dead ones are
// evicted in place, so the remaining order is always spawn order.
type ObjectQueue struct {
	items []*GameObject
}

// NewObjectQueue creates an empty queue.
func NewObjectQueue() *ObjectQueue {
	return &ObjectQueue{items: make([]*GameObject, 0, 16)}
}

// Push appends an object at the tail.
func (q *ObjectQueue) Push(o *GameObject) {
	q.items = append(q.items, o)
}

// Len returns the number of objects in the queue.
func (q *ObjectQueue) Len() int {
	return len(q.items)
}

// Head returns the oldest object, or nil when empty.
func (q *ObjectQueue) Head() *GameObject {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Last returns the most recently spawned object, or nil when empty.
func (q *ObjectQueue) Last() *GameObject {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[len(q.items)-1]
}

// All returns the objects in spawn order. The slice must not be retained
// across steps.
func (q *ObjectQueue) All() []*GameObject {
	return q.items
}

// Contains reports whether o is still in the queue.
func (q *ObjectQueue) Contains(o *GameObject) bool {
	for _, it := range q.items {
		if it == o {
			return true
		}
	}
	return false
}

// Evict removes every object that died before the given tick and returns
// how many were removed. An object that dies during tick T stays visible
// (as dead) for the rest of T and is removed on T+1.
func (q *ObjectQueue) Evict(tick int) int {
	kept := q.items[:0]
	for _, o := range q.items {
		if o.Dead && o.diedAt < tick {
			continue
		}
		kept = append(kept, o)
	}
	removed := len(q.items) - len(kept)

	// Drop references held by the now-unused tail
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
	return removed
}

// Clear removes everything.
func (q *ObjectQueue) Clear() {
	for i := range q.items {
		q.items[i] = nil
	}
	q.items = q.items[:0]
}
