package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	productKeyPrefix  = "product:%s"
	categoryKeyPrefix = "category:%s"
	chatKeyPrefix     = "chat:%s"
	freshKey          = "products:fresh"
)

const (
	ProductTTL  = 10 * time.Minute
	CategoryTTL = 10 * time.Minute
	ChatTTL     = 2 * time.Minute
	FreshTTL    = 1 * time.Minute
)

func ProductKey(slug string) string {
	return fmt.Sprintf(productKeyPrefix, slug)
}

func CategoryKey(slug string) string {
	return fmt.Sprintf(categoryKeyPrefix, slug)
}

func ChatKey(slug string) string {
	return fmt.Sprintf(chatKeyPrefix, slug)
}

func FreshKey() string {
	return freshKey
}

func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

func InvalidateProduct(ctx context.Context, slug string) {
	Invalidate(ctx, ProductKey(slug), FreshKey())
}

func InvalidateCategory(ctx context.Context, slug string) {
	Invalidate(ctx, CategoryKey(slug))
}

func InvalidateChat(ctx context.Context, slug string) {
	Invalidate(ctx, ChatKey(slug))
}
