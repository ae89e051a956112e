package simple

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/models"
	"github.com/daiguadaidai/tsql-stats/services/stats"
	"github.com/daiguadaidai/tsql-stats/utils"
	"github.com/daiguadaidai/tsql-stats/visitor"
)

func Start(simpleCfg *config.SimpleConfig) {
	defer seelog.Flush()
	logger, _ := seelog.LoggerFromConfigAsBytes([]byte(config.LogConfigWithLevel(simpleCfg.LogLevel)))
	seelog.ReplaceLogger(logger)

	// 检测启动配置信息是否可用
	if err := simpleCfg.Check(); err != nil {
		seelog.Error(err.Error())
		syscall.Exit(1)
	}

	Run(models.NewSourceUnit(config.ADHOC_UNIT_NAME, simpleCfg.Query), os.Stdout)

	if simpleCfg.Pause {
		seelog.Flush()
		utils.WaitForEnter(os.Stdin, os.Stdout)
	}
}

// 解析语句, 有错误输出错误, 没有错误访问所有 SELECT. 返回访问结果, 解析失败返回 nil
func Run(unit *models.SourceUnit, w io.Writer) *visitor.SelectVisitor {
	outcome := visitor.ParseSQL(unit.Text)
	if outcome.HasErrors() {
		fmt.Fprintln(w, unit.Name)
		stats.NewReporter(w).WriteErrors(outcome.Errors)
		return nil
	}

	vst := visitor.VisitSelects(outcome.Tree)
	seelog.Debugf("%s 解析完成, 访问节点: %v", unit.Name, vst.Visited)
	return vst
}
