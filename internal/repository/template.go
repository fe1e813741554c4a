package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
	"notification-dispatch/internal/repository/dao"
)

// templateRepository 本地缓存 -> Redis -> 数据库
type templateRepository struct {
	dao        dao.TemplateDAO
	localCache cache.TemplateCache
	redisCache cache.TemplateCache
	logger     *elog.Component
}

func NewTemplateRepository(d dao.TemplateDAO, localCache cache.TemplateCache, redisCache cache.TemplateCache) TemplateRepository {
	return &templateRepository{
		dao:        d,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}

func (repo *templateRepository) GetByName(ctx context.Context, name string) (domain.NotificationTemplate, error) {
	tpl, err := repo.localCache.Get(ctx, name)
	if err == nil {
		return tpl, nil
	}
	tpl, err = repo.redisCache.Get(ctx, name)
	if err == nil {
		_ = repo.localCache.Set(ctx, tpl)
		return tpl, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		repo.logger.Warn("从 Redis 获取模板失败", elog.String("name", name), elog.FieldErr(err))
	}

	entity, err := repo.dao.GetByName(ctx, name)
	if err != nil {
		return domain.NotificationTemplate{}, err
	}
	tpl = repo.toDomain(entity)
	if err1 := repo.redisCache.Set(ctx, tpl); err1 != nil {
		repo.logger.Warn("回写 Redis 模板缓存失败", elog.String("name", name), elog.FieldErr(err1))
	}
	_ = repo.localCache.Set(ctx, tpl)
	return tpl, nil
}

func (repo *templateRepository) Save(ctx context.Context, tpl domain.NotificationTemplate) (domain.NotificationTemplate, error) {
	saved, err := repo.dao.Upsert(ctx, repo.toEntity(tpl))
	if err != nil {
		return domain.NotificationTemplate{}, err
	}
	res := repo.toDomain(saved)
	// 写入 Redis 会通知到所有节点刷新本地缓存
	if err1 := repo.redisCache.Set(ctx, res); err1 != nil {
		repo.logger.Warn("更新 Redis 模板缓存失败", elog.String("name", res.Name), elog.FieldErr(err1))
	}
	_ = repo.localCache.Set(ctx, res)
	return res, nil
}

func (repo *templateRepository) LoadCache(ctx context.Context) error {
	entities, err := repo.dao.FindAll(ctx)
	if err != nil {
		return err
	}
	tpls := slice.Map(entities, func(_ int, src dao.Template) domain.NotificationTemplate {
		return repo.toDomain(src)
	})
	if err := repo.redisCache.SetTemplates(ctx, tpls); err != nil {
		return err
	}
	return repo.localCache.SetTemplates(ctx, tpls)
}

func (repo *templateRepository) toEntity(tpl domain.NotificationTemplate) dao.Template {
	entity := dao.Template{
		ID:      tpl.ID,
		Name:    tpl.Name,
		Subject: tpl.Subject,
		Content: tpl.CommonContentTemplate,
	}
	if len(tpl.ChannelOverrides) > 0 {
		overrides := make(map[string]string, len(tpl.ChannelOverrides))
		for c, content := range tpl.ChannelOverrides {
			overrides[c.String()] = content
		}
		entity.ChannelOverrides = sqlx.JsonColumn[map[string]string]{Val: overrides, Valid: true}
	}
	return entity
}

func (repo *templateRepository) toDomain(entity dao.Template) domain.NotificationTemplate {
	tpl := domain.NotificationTemplate{
		ID:                    entity.ID,
		Name:                  entity.Name,
		Subject:               entity.Subject,
		CommonContentTemplate: entity.Content,
		Ctime:                 entity.Ctime,
		Utime:                 entity.Utime,
	}
	if entity.ChannelOverrides.Valid {
		tpl.ChannelOverrides = make(map[domain.Channel]string, len(entity.ChannelOverrides.Val))
		for c, content := range entity.ChannelOverrides.Val {
			tpl.ChannelOverrides[domain.ParseChannel(c)] = content
		}
	}
	return tpl
}
