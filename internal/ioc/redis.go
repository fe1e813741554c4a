package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("redis", &cfg); err != nil {
		panic(err)
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func InitRedisCmd(client *redis.Client) redis.Cmdable {
	return client
}

// InitGoCache 本地模板缓存
func InitGoCache() *ca.Cache {
	return ca.New(10*time.Minute, 20*time.Minute)
}
