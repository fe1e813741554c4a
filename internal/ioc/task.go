package ioc

import (
	"notification-dispatch/internal/event/request"
)

func InitTasks(c *request.EventConsumer) []Task {
	return []Task{
		c,
	}
}
