package cache

import (
	"container/list"
	"context"
	"sync"
)

// MemoryGateway is a thread-safe in-process LRU gateway. Useful for one-shot
// export runs and tests where no Redis is available.
type MemoryGateway struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type memoryEntry struct {
	key   string
	value []byte
}

// NewMemoryGateway creates an LRU gateway holding at most capacity entries.
func NewMemoryGateway(capacity int) *MemoryGateway {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryGateway{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *MemoryGateway) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[key]
	if !exists {
		return nil, false, nil
	}

	// Move to front (most recently used)
	c.order.MoveToFront(elem)
	entry := elem.Value.(*memoryEntry)
	return cloneBytes(entry.value), true, nil
}

func (c *MemoryGateway) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[key]; exists {
		c.order.MoveToFront(elem)
		elem.Value.(*memoryEntry).value = cloneBytes(value)
		return nil
	}

	// Evict if at capacity
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(*memoryEntry).key)
			c.order.Remove(oldest)
		}
	}

	elem := c.order.PushFront(&memoryEntry{key: key, value: cloneBytes(value)})
	c.entries[key] = elem
	return nil
}

func (c *MemoryGateway) Ping(context.Context) error { return nil }

func (c *MemoryGateway) Close() error { return nil }

// Len returns the number of cached entries.
func (c *MemoryGateway) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
