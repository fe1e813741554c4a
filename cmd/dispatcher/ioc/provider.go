package ioc

import (
	"github.com/ecodeclub/ekit/pool"
	ca "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	redisv9 "github.com/redis/go-redis/v9"
	"notification-dispatch/internal/pkg/render"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/repository/cache/local"
	"notification-dispatch/internal/repository/cache/redis"
	"notification-dispatch/internal/repository/dao"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/preference"
	"notification-dispatch/internal/service/sender"
)

func newRenderer() render.Renderer {
	return render.NewHandlebarsRenderer()
}

// newTemplateRepository 本地缓存在前，redis 在后
func newTemplateRepository(d dao.TemplateDAO, rdb *redisv9.Client, c *ca.Cache) repository.TemplateRepository {
	return repository.NewTemplateRepository(d, local.NewLocalCache(rdb, c), redis.NewTemplateCache(rdb))
}

func newSender(
	repo repository.NotificationRepository,
	prefSvc preference.Service,
	dispatcher *channel.Dispatcher,
	renderer render.Renderer,
	taskPool pool.TaskPool,
	reg prometheus.Registerer,
) sender.NotificationSender {
	return sender.NewMetricsSender(sender.NewSender(repo, prefSvc, dispatcher, renderer, taskPool), reg)
}
