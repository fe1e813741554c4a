package idempotent

import "context"

// Service 第一次见到 key 返回 false，之后在有效期内都返回 true
type Service interface {
	Exists(ctx context.Context, key string) (bool, error)
	MExists(ctx context.Context, keys ...string) ([]bool, error)
}
