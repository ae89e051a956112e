package config

import (
	"strings"

	"github.com/daiguadaidai/tsql-stats/utils"
)

type StatsConfig struct {
	Schemas    []string // 只分析指定 schema 下的存储过程
	Procs      []string // 只分析指定的存储过程, 可以是 name 或者 schema.name
	Summary    bool
	Pause      bool
	LogLevel   string
	ConfigFile string
}

func NewStatsConfig() *StatsConfig {
	return &StatsConfig{
		Schemas:  make([]string, 0, 1),
		Procs:    make([]string, 0, 1),
		Pause:    PAUSE_AFTER_EXIT,
		LogLevel: LOG_LEVEL,
	}
}

func (this *StatsConfig) Check() error {
	return CheckLogLevel(this.LogLevel)
}

// 存储过程是否需要分析, name 格式为 schema.name
func (this *StatsConfig) MatchProcedure(name string) bool {
	schema, proc := utils.SplitQualifiedName(name)

	if len(this.Schemas) > 0 && !utils.InStringsFold(schema, this.Schemas) {
		return false
	}

	if len(this.Procs) == 0 {
		return true
	}
	for _, p := range this.Procs {
		pSchema, pName := utils.SplitQualifiedName(strings.TrimSpace(p))
		if !strings.EqualFold(pName, proc) {
			continue
		}
		if pSchema == "" || strings.EqualFold(pSchema, schema) {
			return true
		}
	}

	return false
}
