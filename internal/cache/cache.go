package cache

import (
	"container/list"
	"errors"
	"fmt"
	"sync"
)

var ErrTooLarge = errors.New("value exceeds cache capacity")

// Cache is an LRU of strings bounded by the approximate byte size of its
// entries. It is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	maxBytes  int64
	size      int64
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

// New creates a cache holding up to maxMB megabytes.
func New(maxMB int64) (*Cache, error) {
	if maxMB <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxMB)
	}
	return &Cache{
		maxBytes:  maxMB * 1024 * 1024,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *Cache) Put(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := sizeof(key, value)
	if n > c.maxBytes {
		return ErrTooLarge
	}

	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		kv := ele.Value.(*entry)
		c.size += n - sizeof(kv.key, kv.value)
		kv.value = value
	} else {
		ele := c.evictList.PushFront(&entry{key, value})
		c.items[key] = ele
		c.size += n
	}

	for c.size > c.maxBytes {
		c.removeOldest()
	}
	return nil
}

// SizeOf returns the approximate number of bytes held.
func (c *Cache) SizeOf() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
	c.size -= sizeof(kv.key, kv.value)
}

func sizeof(key, value string) int64 {
	return int64(len(key) + len(value))
}

// ReadableSize formats a byte count, e.g. 1536 -> "1.50 KB".
func ReadableSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
