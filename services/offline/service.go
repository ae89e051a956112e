package offline

import (
	"os"
	"syscall"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/services/stats"
	"github.com/daiguadaidai/tsql-stats/utils"
)

func Start(offlineCfg *config.OfflineConfig) {
	defer seelog.Flush()
	logger, _ := seelog.LoggerFromConfigAsBytes([]byte(config.LogConfigWithLevel(offlineCfg.LogLevel)))
	seelog.ReplaceLogger(logger)

	// 检测启动配置信息是否可用
	if err := offlineCfg.Check(); err != nil {
		seelog.Error(err.Error())
		syscall.Exit(1)
	}

	files, err := offlineCfg.GetSqlFiles()
	if err != nil {
		seelog.Error(err.Error())
		syscall.Exit(1)
	}
	if len(files) == 0 {
		seelog.Warnf("没有找到需要分析的 sql 文件. %s", offlineCfg.SqlDir)
	}

	dataStats := stats.NewDataStats(stats.NewFileSource(files), stats.NewReporter(os.Stdout), offlineCfg.Summary)
	if err := dataStats.Start(); err != nil {
		seelog.Errorf("统计出错. %v", err)
		seelog.Flush()
		syscall.Exit(1)
	}
	seelog.Infof("统计完成, 共分析 %d 个文件", len(dataStats.Units))

	if offlineCfg.Pause {
		seelog.Flush()
		utils.WaitForEnter(os.Stdin, os.Stdout)
	}
}
