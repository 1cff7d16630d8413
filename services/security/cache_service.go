package security

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Short-lived in-process cache, mostly for token-to-user resolution on
// the hot ledger endpoints.
type Cache struct {
	init bool
	c    *cache.Cache
}

var (
	CacheInstance Cache
	lock          = &sync.Mutex{}
)

func NewCache() *Cache {
	lock.Lock()
	defer lock.Unlock()

	if !CacheInstance.init {
		CacheInstance = Cache{
			init: true,
			c:    cache.New(2*time.Minute, 5*time.Minute),
		} // <-- thread safe
	}

	return &CacheInstance
}

func (cm *Cache) Insert(k string, x interface{}) {
	cm.c.Set(k, x, cache.DefaultExpiration)
}

func (cm *Cache) Get(key string) (interface{}, error) {
	val, found := cm.c.Get(key)
	if found {
		return val, nil
	}

	return nil, fmt.Errorf("value not found")
}

