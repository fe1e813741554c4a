package ioc

import (
	"github.com/ego-component/egorm"
	"notification-dispatch/internal/repository/dao"
)

func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
