package inapp

import (
	"context"
)

const (
	EventName = "inapp_notifications"
)

// Event 站内信实时推送事件，由实时推送服务消费
type Event struct {
	NotificationID uint64 `json:"notificationId"`
	UserID         int64  `json:"userId"`
	Route          string `json:"route"`
	Title          string `json:"title"`
	Message        string `json:"message"`
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=../mocks/inapp.mock.go EventProducer
type EventProducer interface {
	Produce(ctx context.Context, evt Event) error
}
