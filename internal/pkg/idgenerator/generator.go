package id

import (
	"errors"
	"time"

	"github.com/sony/sonyflake"
)

// Generator 通知ID生成器
type Generator interface {
	NextID() (uint64, error)
}

var _ Generator = (*sonyflake.Sonyflake)(nil)

// NewSonyflakeGenerator machineID 需要在集群内唯一
func NewSonyflakeGenerator(startTime time.Time, machineID uint16) (Generator, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: startTime,
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
	if sf == nil {
		return nil, errors.New("初始化 sonyflake 失败")
	}
	return sf, nil
}
