package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache     ecache.Cache
	cacheOnce sync.Once
)

func InitCache() ecache.Cache {
	cacheOnce.Do(func() {
		cmd := redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "subpay:",
		}
	})
	return cache
}
