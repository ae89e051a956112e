package stats

import (
	"fmt"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/models"
	"github.com/daiguadaidai/tsql-stats/utils"
)

// 需要分析的 sql 来源
type SourceProvider interface {
	// 所有单元的名称, 有顺序
	Names() ([]string, error)
	// 获取单元文本, 失败的时候返回 HasText 为 false 的单元
	Fetch(name string) *models.SourceUnit
}

type ProcedureFinder interface {
	FindProcedureNames() ([]string, error)
	GetProcedureText(name string) (string, error)
}

// 数据库中的存储过程
type CatalogSource struct {
	Finder ProcedureFinder
	Cfg    *config.StatsConfig
}

func NewCatalogSource(finder ProcedureFinder, cfg *config.StatsConfig) *CatalogSource {
	return &CatalogSource{
		Finder: finder,
		Cfg:    cfg,
	}
}

func (this *CatalogSource) Names() ([]string, error) {
	names, err := this.Finder.FindProcedureNames()
	if err != nil {
		return nil, fmt.Errorf("获取存储过程列表出错. %s", err.Error())
	}

	if this.Cfg == nil {
		return names, nil
	}
	matched := make([]string, 0, len(names))
	for _, name := range names {
		if this.Cfg.MatchProcedure(name) {
			matched = append(matched, name)
		}
	}
	seelog.Debugf("存储过程总数: %d, 需要分析: %d", len(names), len(matched))

	return matched, nil
}

func (this *CatalogSource) Fetch(name string) *models.SourceUnit {
	text, err := this.Finder.GetProcedureText(name)
	if err != nil {
		seelog.Warnf("获取存储过程文本失败, 跳过. %s", err.Error())
		return models.NewAbsentSourceUnit(name)
	}
	return models.NewSourceUnit(name, text)
}

// 本地 .sql 文件
type FileSource struct {
	Files []string
}

func NewFileSource(files []string) *FileSource {
	return &FileSource{
		Files: files,
	}
}

func (this *FileSource) Names() ([]string, error) {
	return this.Files, nil
}

func (this *FileSource) Fetch(name string) *models.SourceUnit {
	text, err := utils.ReadSqlFile(name)
	if err != nil {
		seelog.Warnf("读取sql文件失败, 跳过. %s. %s", name, err.Error())
		return models.NewAbsentSourceUnit(name)
	}
	return models.NewSourceUnit(name, text)
}
