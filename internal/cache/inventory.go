package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// GlobalTimelinePrefix namespaces per-page snapshots of the global
	// timeline, e.g. "timeline:global:page:2".
	GlobalTimelinePrefix = "timeline:global:page:"
	GroupKeyPrefix       = "group:%s"
	UserKeyPrefix        = "user:%d"
)

// GlobalTimelineTTL bounds how stale a cached global-timeline page can get.
// New posts do not evict snapshots; only TTL expiry or an explicit
// invalidation does. Keep this short.
const GlobalTimelineTTL = 20 * time.Second

func GlobalTimelineKey(page int) string {
	return fmt.Sprintf("%s%d", GlobalTimelinePrefix, page)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// Invalidate removes a single cached view.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateGlobalTimeline evicts every cached page of the global timeline.
// Write paths may call this to force the next read to see fresh data before
// TTL expiry; nothing calls it automatically.
func InvalidateGlobalTimeline(ctx context.Context) error {
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, GlobalTimelinePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
	return iter.Err()
}
