package stats

import (
	"os"
	"syscall"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/dao"
	"github.com/daiguadaidai/tsql-stats/gdbc"
	"github.com/daiguadaidai/tsql-stats/utils"
)

func Start(statsCfg *config.StatsConfig, dbc *config.DBConfig) {
	defer seelog.Flush()
	logger, _ := seelog.LoggerFromConfigAsBytes([]byte(config.LogConfigWithLevel(statsCfg.LogLevel)))
	seelog.ReplaceLogger(logger)

	// 检测启动配置信息是否可用
	if err := statsCfg.Check(); err != nil {
		seelog.Error(err.Error())
		syscall.Exit(1)
	}
	if err := dbc.Check(); err != nil {
		seelog.Error(err.Error())
		syscall.Exit(1)
	}
	config.SetDBConfig(dbc)

	ormInstance := gdbc.GetOrmInstance()
	if ormInstance.Err != nil {
		seelog.Error(ormInstance.Err.Error())
		syscall.Exit(1)
	}
	defer gdbc.CloseOrmInstance()
	seelog.Infof("开始分析存储过程. %s", dbc.Target())

	dataStats := NewDataStats(NewCatalogSource(dao.NewDefaultDao(), statsCfg), NewReporter(os.Stdout), statsCfg.Summary)
	if err := dataStats.Start(); err != nil {
		seelog.Errorf("统计出错. %v", err)
		seelog.Flush()
		syscall.Exit(1)
	}
	seelog.Infof("统计完成, 共分析 %d 个存储过程", len(dataStats.Units))

	if statsCfg.Pause {
		seelog.Flush()
		utils.WaitForEnter(os.Stdin, os.Stdout)
	}
}
