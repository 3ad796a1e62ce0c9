package ports

import "context"

type CachePort[T any] interface {
	Get(key string) (T, bool)
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context, key string) (T, error)) (T, error)
	Len() int
	ClearKey(key string)
}
