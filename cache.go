package tailicon

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds icons by name for the lifetime of the process, entries are never evicted.
// It is safe for concurrent use: an icon is built only once per name and readers never see a partially constructed entry.
type Cache struct {
	mutex sync.RWMutex
	icons map[string]*Icon
	group singleflight.Group
}

// NewCache returns a new empty Cache.
func NewCache() *Cache {
	return &Cache{
		icons: map[string]*Icon{},
	}
}

// Get returns the icon cached under name.
func (c *Cache) Get(name string) (*Icon, bool) {
	c.mutex.RLock()
	icon, ok := c.icons[name]
	c.mutex.RUnlock()
	return icon, ok
}

// GetOrInsert returns the icon cached under name, or calls build and caches its result.
// Concurrent calls for the same missing name wait for a single call to build.
func (c *Cache) GetOrInsert(name string, build func() *Icon) *Icon {
	if icon, ok := c.Get(name); ok {
		return icon
	}

	v, _, _ := c.group.Do(name, func() (interface{}, error) {
		// another caller may have inserted it between Get and Do
		if icon, ok := c.Get(name); ok {
			return icon, nil
		}

		icon := build()
		c.mutex.Lock()
		c.icons[name] = icon
		c.mutex.Unlock()
		return icon, nil
	})
	return v.(*Icon)
}

// Len returns the number of cached icons.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.icons)
}

// Reset removes all icons.
func (c *Cache) Reset() {
	c.mutex.Lock()
	c.icons = map[string]*Icon{}
	c.mutex.Unlock()
}
