package catalog

import "sync"

// Cache is the locally known, ordered set of records for one backend
// collection.
//
// Full refreshes are sequenced: Begin hands out a number when a fetch is
// issued and Replace only applies a result whose number is newer than the
// last one applied, so a slow response can never overwrite a fresher one.
// Appends and in-place updates are not sequenced. Records are never deleted
// locally; a deletion only shows up after the next refresh.
type Cache[T Record] struct {
	mu      sync.RWMutex
	items   []T
	issued  uint64
	applied uint64
}

// NewCache creates an empty cache.
func NewCache[T Record]() *Cache[T] {
	return &Cache[T]{}
}

// Begin reserves the sequence number for a full refresh about to be issued.
func (c *Cache[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

// Replace swaps the whole contents for items if seq is newer than the last
// applied refresh. It reports whether the items were applied.
func (c *Cache[T]) Replace(seq uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		return false
	}

	c.applied = seq
	c.items = append(make([]T, 0, len(items)), items...)
	return true
}

// Append adds a record at the end.
func (c *Cache[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// Update replaces the record with the same ID in place. It reports whether
// a record was found.
func (c *Cache[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].RecordID() == item.RecordID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Reset empties the cache and invalidates every refresh issued so far.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.applied = c.issued
}

// Items returns a copy of the cached records in order.
func (c *Cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append(make([]T, 0, len(c.items)), c.items...)
}

// Find returns the record with the given ID.
func (c *Cache[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Len returns the number of cached records.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
