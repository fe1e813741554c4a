package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/pkg/ratelimit"
)

func InitRateLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`

		// Routes 路由名 -> 阈值
		Routes map[string]int `yaml:"routes"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("ratelimit", &cfg); err != nil {
		panic(err)
	}
	l := ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.Interval, cfg.Rate)
	for route, rate := range cfg.Routes {
		l.WithKeyRate(ratelimit.RouteKey(route), rate)
	}
	return l
}
