package main

import (
	"context"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/cmd/dispatcher/ioc"
	prodioc "notification-dispatch/internal/ioc"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	egoApp := ego.New()
	tp := prodioc.InitTracerProvider()
	app := ioc.InitApp()
	app.StartTasks(ctx)

	err := egoApp.
		Serve(app.HTTPServer).
		Cron(app.Crons...).
		Run()
	if err1 := tp.Shutdown(context.Background()); err1 != nil {
		elog.Error("关闭 TracerProvider 失败", elog.FieldErr(err1))
	}
	if err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
