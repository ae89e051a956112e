package stats

import (
	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/models"
	"github.com/daiguadaidai/tsql-stats/visitor"
)

// 顺序获取, 解析, 统计, 输出每一个单元
type DataStats struct {
	Source   SourceProvider
	Reporter *Reporter
	Summary  bool
	Units    []*UnitStat
}

func NewDataStats(source SourceProvider, reporter *Reporter, summary bool) *DataStats {
	return &DataStats{
		Source:   source,
		Reporter: reporter,
		Summary:  summary,
		Units:    make([]*UnitStat, 0, 100),
	}
}

// 只有获取单元列表失败的时候返回错误
func (this *DataStats) Start() error {
	names, err := this.Source.Names()
	if err != nil {
		return err
	}

	for i, name := range names {
		seelog.Debugf("开始分析: %d/%d, %s", i+1, len(names), name)
		unit := this.Source.Fetch(name)
		u := AnalyzeUnit(unit)
		this.Units = append(this.Units, u)
		this.Reporter.WriteUnit(u)
	}

	if this.Summary {
		this.Reporter.WriteSummary(this.Units)
	}

	return nil
}

func AnalyzeUnit(unit *models.SourceUnit) *UnitStat {
	u := &UnitStat{Name: unit.Name}
	if !unit.HasText {
		u.Skipped = true
		return u
	}

	outcome := visitor.ParseSQL(unit.Text)
	if outcome.HasErrors() {
		u.Errors = outcome.Errors
		return u
	}

	u.Result = visitor.GetStats(outcome.Tree)
	return u
}
