package stats

import (
	"github.com/daiguadaidai/tsql-stats/visitor"
)

const (
	STATUS_OK      = "ok"
	STATUS_ERROR   = "parse error"
	STATUS_SKIPPED = "skipped"
)

// 一个单元的分析结果
type UnitStat struct {
	Name    string
	Skipped bool
	Errors  []*visitor.ParseError
	Result  *visitor.StatsResult
}

func (this *UnitStat) Status() string {
	switch {
	case this.Skipped:
		return STATUS_SKIPPED
	case len(this.Errors) > 0:
		return STATUS_ERROR
	}
	return STATUS_OK
}

// 指定类型的语句数量, 没有结果的时候为 0
func (this *UnitStat) Count(kind visitor.StmtKind) int {
	if this.Result == nil {
		return 0
	}
	return this.Result.Get(kind).Count
}

// 所有单元的汇总
type TotalStat struct {
	Units    int
	OK       int
	Errors   int
	Skipped  int
	Counters map[visitor.StmtKind]int
}

func NewTotalStat(units []*UnitStat) *TotalStat {
	total := &TotalStat{
		Units:    len(units),
		Counters: make(map[visitor.StmtKind]int),
	}
	for _, u := range units {
		switch u.Status() {
		case STATUS_OK:
			total.OK++
		case STATUS_ERROR:
			total.Errors++
		case STATUS_SKIPPED:
			total.Skipped++
		}
		for _, kind := range visitor.CountedKinds {
			total.Counters[kind] += u.Count(kind)
		}
	}
	return total
}
