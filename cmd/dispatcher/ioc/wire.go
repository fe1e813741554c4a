//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"notification-dispatch/internal/handler/notification"
	"notification-dispatch/internal/handler/template"
	prodioc "notification-dispatch/internal/ioc"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/repository/cache/redis"
	"notification-dispatch/internal/repository/dao"
	notificationsvc "notification-dispatch/internal/service/notification"
	"notification-dispatch/internal/service/preference"
	templatesvc "notification-dispatch/internal/service/template"
)

var (
	BaseSet = wire.NewSet(
		prodioc.InitDB,
		prodioc.InitRedisClient,
		prodioc.InitRedisCmd,
		prodioc.InitGoCache,
		prodioc.InitIDGenerator,
		prodioc.InitTaskPool,
		prodioc.InitMQ,
		prodioc.InitRateLimiter,
		prodioc.InitPrometheusRegisterer,
		newRenderer,
	)
	repoSet = wire.NewSet(
		dao.NewNotificationDAO,
		dao.NewUserDAO,
		dao.NewTemplateDAO,
		dao.NewPreferenceDAO,
		redis.NewPreferenceCache,
		repository.NewNotificationRepository,
		repository.NewUserRepository,
		repository.NewPreferenceRepository,
		newTemplateRepository,
	)
	channelSet = wire.NewSet(
		prodioc.InitProvidersConfig,
		prodioc.InitProviderCollector,
		prodioc.InitInAppProducer,
		prodioc.InitDispatcher,
	)
	notificationSvcSet = wire.NewSet(
		prodioc.InitRouteRegistry,
		prodioc.InitRouteLookup,
		templatesvc.NewStore,
		preference.NewService,
		notificationsvc.NewMapper,
		newSender,
		notificationsvc.NewCommandService,
		notificationsvc.NewQueryService,
	)
)

func InitApp() *prodioc.App {
	wire.Build(
		BaseSet,
		repoSet,
		channelSet,
		notificationSvcSet,

		notification.NewHandler,
		template.NewHandler,
		prodioc.InitGinServer,

		prodioc.InitRequestEventConsumer,
		prodioc.InitTasks,
		prodioc.Crons,
		wire.Struct(new(prodioc.App), "*"),
	)
	return new(prodioc.App)
}
