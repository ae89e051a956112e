package gdbc

import (
	"fmt"
	"sync"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mssql"
)

const DIALECT = "mssql"

var ormInstance *OrmInstance

type OrmInstance struct {
	DB  *gorm.DB
	Err error
	sync.Once
}

// 单例模式获取原生数据库链接
func GetOrmInstance() *OrmInstance {
	if ormInstance.DB == nil {
		// 实例化元数据库实例
		ormInstance.Once.Do(func() {
			// 获取元数据配置信息
			dbConfig := config.GetDBConfig()
			if dbConfig == nil {
				ormInstance.Err = fmt.Errorf("没有设置数据库配置")
				return
			}

			// 链接数据库
			db, err := gorm.Open(DIALECT, dbConfig.GetDataSource())
			if err != nil {
				seelog.Errorf("打开ORM数据库实例错误. %s. %v", dbConfig.Target(), err)
				ormInstance.Err = fmt.Errorf("打开数据库链接失败. %s. %s", dbConfig.Target(), err.Error())
				return
			}
			db.LogMode(false)

			db.DB().SetMaxOpenConns(dbConfig.MaxOpenConns)
			db.DB().SetMaxIdleConns(dbConfig.MaxIdelConns)
			if err = db.DB().Ping(); err != nil {
				ormInstance.Err = fmt.Errorf("数据库链接不可用. %s. %s", dbConfig.Target(), err.Error())
				db.Close()
				return
			}
			ormInstance.DB = db
		})
	}

	return ormInstance
}

// 使用已经打开的链接替换单例, 测试的时候传入 sqlmock 的链接
func SetOrmDB(db *gorm.DB) {
	ormInstance = &OrmInstance{DB: db}
	ormInstance.Once.Do(func() {})
}

// 关闭链接
func CloseOrmInstance() {
	if ormInstance.DB != nil {
		if err := ormInstance.DB.Close(); err != nil {
			seelog.Warnf("关闭数据库链接出错. %s", err.Error())
		}
	}
	ormInstance = new(OrmInstance)
}

func init() {
	// 初始化OrmInstance 实例
	ormInstance = new(OrmInstance)
}
