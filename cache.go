package kontainer

import (
	"sync"
)

// instanceCache holds the built values of permanent keys.
type instanceCache struct {
	instances map[Key]any
	mu        sync.RWMutex
}

// newInstanceCache creates a new instance cache
func newInstanceCache() *instanceCache {
	return &instanceCache{
		instances: make(map[Key]any),
	}
}

// get retrieves an instance from the cache
func (c *instanceCache) get(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	instance, ok := c.instances[key]
	return instance, ok
}

// set stores an instance in the cache
func (c *instanceCache) set(key Key, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[key] = instance
}

// delete removes an instance from the cache
func (c *instanceCache) delete(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, key)
}

// has reports whether an instance is cached for key
func (c *instanceCache) has(key Key) bool {
	_, ok := c.get(key)
	return ok
}

// len returns the number of cached instances
func (c *instanceCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances)
}
