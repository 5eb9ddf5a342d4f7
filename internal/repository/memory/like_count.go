package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/Guyuepp/album-catalog/domain"
)

// slot is the cache state of one album. A slot without a count still carries
// the version that in-flight fills must match.
type slot struct {
	likes   int64
	present bool
	version uint64
	elem    *list.Element
}

type likeCountCache struct {
	mu       sync.Mutex
	slots    map[string]*slot
	clock    uint64 // bumped by every invalidation
	capacity int
	lru      *list.List // front is most recently used, values are album ids
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

// NewLikeCountCache creates a process-local like count cache.
// capacity <= 0 keeps every album that was ever queried.
func NewLikeCountCache(capacity int) *likeCountCache {
	return &likeCountCache{
		slots:    make(map[string]*slot),
		capacity: capacity,
		lru:      list.New(),
	}
}

func (c *likeCountCache) Get(_ context.Context, albumID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[albumID]
	if !ok || !s.present {
		return 0, domain.ErrCacheMiss
	}
	c.touch(s)
	return s.likes, nil
}

func (c *likeCountCache) Set(_ context.Context, albumID string, likes int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.slotFor(albumID)
	s.likes = likes
	s.present = true
	return nil
}

func (c *likeCountCache) Invalidate(_ context.Context, albumID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if s, ok := c.slots[albumID]; ok {
		s.present = false
		s.likes = 0
		s.version = c.clock
	}
	return nil
}

func (c *likeCountCache) Version(_ context.Context, albumID string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.slotFor(albumID).version, nil
}

func (c *likeCountCache) SetIfVersion(_ context.Context, albumID string, likes int64, version uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[albumID]
	if !ok {
		// the slot was evicted; only the global clock can prove nothing was invalidated since
		if version != c.clock {
			return false, nil
		}
		s = c.slotFor(albumID)
	}
	if s.version != version {
		return false, nil
	}
	s.likes = likes
	s.present = true
	c.touch(s)
	return true, nil
}

// slotFor returns the slot of albumID, creating it if needed. Caller holds c.mu.
func (c *likeCountCache) slotFor(albumID string) *slot {
	if s, ok := c.slots[albumID]; ok {
		c.touch(s)
		return s
	}

	s := &slot{version: c.clock}
	c.slots[albumID] = s
	if c.capacity > 0 {
		s.elem = c.lru.PushFront(albumID)
		for c.lru.Len() > c.capacity {
			c.evictOldest()
		}
	}
	return s
}

func (c *likeCountCache) touch(s *slot) {
	if s.elem != nil {
		c.lru.MoveToFront(s.elem)
	}
}

func (c *likeCountCache) evictOldest() {
	back := c.lru.Back()
	if back == nil {
		return
	}
	c.lru.Remove(back)
	delete(c.slots, back.Value.(string))
}

// Len reports how many albums currently have a cached count.
func (c *likeCountCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, s := range c.slots {
		if s.present {
			n++
		}
	}
	return n
}
