package cache

// entry is a cached value linked into the recency ring.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// ring is a circular recency list around a sentinel: root.next is the most
// recently used entry and root.prev the least. It must not be copied after
// init and is not synchronized.
type ring[K comparable, V any] struct {
	root entry[K, V]
}

func (r *ring[K, V]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
}

func (r *ring[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
}

func (r *ring[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}

// touch marks e as most recently used.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	r.remove(e)
	r.pushFront(e)
}

// oldest returns the least recently used entry, or nil when empty.
func (r *ring[K, V]) oldest() *entry[K, V] {
	if r.root.prev == &r.root {
		return nil
	}
	return r.root.prev
}
