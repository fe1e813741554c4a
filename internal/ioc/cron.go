package ioc

import (
	"github.com/gotomicro/ego/task/ecron"
	"notification-dispatch/internal/repository"
)

func Crons(tpl repository.TemplateRepository) []ecron.Ecron {
	c1 := ecron.Load("cron.loadTemplateCache").Build(ecron.WithJob(tpl.LoadCache))
	return []ecron.Ecron{c1}
}
