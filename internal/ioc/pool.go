package ioc

import (
	"time"

	"github.com/ecodeclub/ekit/pool"
	"github.com/gotomicro/ego/core/econf"
)

func InitTaskPool() pool.TaskPool {
	type Config struct {
		InitGo           int           `yaml:"initGo"`
		CoreGo           int32         `yaml:"coreGo"`
		MaxGo            int32         `yaml:"maxGo"`
		MaxIdleTime      time.Duration `yaml:"maxIdleTime"`
		QueueSize        int           `yaml:"queueSize"`
		QueueBacklogRate float64       `yaml:"queueBacklogRate"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("pool", &cfg); err != nil {
		panic(err)
	}
	p, err := pool.NewOnDemandBlockTaskPool(cfg.InitGo, cfg.QueueSize,
		pool.WithQueueBacklogRate(cfg.QueueBacklogRate),
		pool.WithMaxIdleTime(cfg.MaxIdleTime),
		pool.WithCoreGo(cfg.CoreGo),
		pool.WithMaxGo(cfg.MaxGo))
	if err != nil {
		panic(err)
	}
	if err = p.Start(); err != nil {
		panic(err)
	}
	return p
}
