package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	id "notification-dispatch/internal/pkg/idgenerator"
)

func InitIDGenerator() id.Generator {
	type Config struct {
		StartTime string `yaml:"startTime"`
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("snowflake", &cfg); err != nil {
		panic(err)
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if cfg.StartTime != "" {
		t, err := time.Parse(time.DateOnly, cfg.StartTime)
		if err != nil {
			panic(err)
		}
		start = t
	}
	gen, err := id.NewSonyflakeGenerator(start, cfg.MachineID)
	if err != nil {
		panic(err)
	}
	return gen
}
