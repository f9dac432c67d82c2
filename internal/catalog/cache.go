package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// The catalogue only changes when the seeding batch runs, so search
// responses can be cached briefly without an invalidation protocol.
// Every cache failure degrades to a database query.
const (
	searchCachePrefix = "songs:search:"
	searchCacheTTL    = 60 * time.Second
)

func searchCacheKey(q, source string) string {
	return searchCachePrefix + "q=" + strings.ToLower(q) + ":source=" + strings.ToLower(source)
}

func (s *Server) cacheGet(ctx context.Context, q, source string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	payload, err := s.rdb.Get(ctx, searchCacheKey(q, source)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("catalog: search cache get: %v", err)
		}
		return nil, false
	}
	return payload, true
}

func (s *Server) cacheSet(ctx context.Context, q, source string, payload []byte) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Set(ctx, searchCacheKey(q, source), payload, searchCacheTTL).Err(); err != nil {
		log.Printf("catalog: search cache set: %v", err)
	}
}

// InvalidateSearchCache drops every cached search response. The seeder
// calls it after inserting new rows so fresh songs show up immediately.
func InvalidateSearchCache(ctx context.Context, rdb *redis.Client) error {
	iter := rdb.Scan(ctx, 0, searchCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
