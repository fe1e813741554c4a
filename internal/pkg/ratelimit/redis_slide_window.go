package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/slide_window.lua
	slidingWindowScript string

	//go:embed lua/last_limit_time.lua
	lastLimitTimeScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

type RedisSlidingWindowLimiter struct {
	cmd      redis.Cmdable
	interval time.Duration
	rate     int

	// keyRates 按 key 覆盖默认阈值，只在启动阶段写入
	keyRates  map[string]int
	keyPrefix string
}

// NewRedisSlidingWindowLimiter 创建一个基于Redis的滑动窗口限流器
// interval 窗口大小，rate 窗口内允许的请求数
func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int) *RedisSlidingWindowLimiter {
	return &RedisSlidingWindowLimiter{
		cmd:       cmd,
		interval:  interval,
		rate:      rate,
		keyRates:  make(map[string]int),
		keyPrefix: "dispatch:ratelimit:",
	}
}

// WithKeyRate 为单个 key 设置窗口内允许的请求数，rate <= 0 时忽略
func (r *RedisSlidingWindowLimiter) WithKeyRate(key string, rate int) *RedisSlidingWindowLimiter {
	if rate > 0 {
		r.keyRates[key] = rate
	}
	return r
}

func (r *RedisSlidingWindowLimiter) rateOf(key string) int {
	if rate, ok := r.keyRates[key]; ok {
		return rate
	}
	return r.rate
}

// Limit 判断是否应该限流
func (r *RedisSlidingWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	now := time.Now().UnixMilli()
	return r.cmd.Eval(ctx, slidingWindowScript,
		[]string{r.getCountKey(key), r.getLimitedEventKey(key)},
		r.interval.Milliseconds(),
		r.rateOf(key),
		now,
		fmt.Sprintf("%d-%d", now, rand.Int64()),
	).Bool()
}

// getCountKey 获取请求计数的Redis键
func (r *RedisSlidingWindowLimiter) getCountKey(key string) string {
	return fmt.Sprintf("%scount:%s", r.keyPrefix, key)
}

// getLimitedEventKey 获取限流事件记录的Redis键
func (r *RedisSlidingWindowLimiter) getLimitedEventKey(key string) string {
	return fmt.Sprintf("%slimitedEvent:%s", r.keyPrefix, key)
}

// LastLimitTime 获取最近一次限流发生的时间，如果没有发生过限流则返回零值
func (r *RedisSlidingWindowLimiter) LastLimitTime(ctx context.Context, key string) (time.Time, error) {
	result, err := r.cmd.Eval(ctx, lastLimitTimeScript,
		[]string{r.getLimitedEventKey(key)}).Int64()
	if err != nil {
		return time.Time{}, err
	}

	if result == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(result), nil
}
