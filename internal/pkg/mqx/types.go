package mqx

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

var _ Consumer = (*kafka.Consumer)(nil)

// Consumer *kafka.Consumer 的子集，方便测试替换
//
//go:generate mockgen -source=./types.go -destination=./mocks/consumer.mock.go -package=mqxmocks Consumer
type Consumer interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(msg *kafka.Message) ([]kafka.TopicPartition, error)
	Assignment() (partitions []kafka.TopicPartition, err error)
	Pause(partitions []kafka.TopicPartition) (err error)
	Resume(partitions []kafka.TopicPartition) (err error)
	Poll(timeoutMs int) (event kafka.Event)
}
