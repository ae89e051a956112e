package config

import (
	"fmt"
	"strings"

	"github.com/daiguadaidai/tsql-stats/utils"
)

type OfflineConfig struct {
	SqlFiles []string
	SqlDir   string
	Summary  bool
	Pause    bool
	LogLevel string
}

func NewOffileConfig() *OfflineConfig {
	return &OfflineConfig{
		SqlFiles: make([]string, 0, 1),
		Pause:    PAUSE_AFTER_EXIT,
		LogLevel: LOG_LEVEL,
	}
}

func (this *OfflineConfig) Check() error {
	if err := CheckLogLevel(this.LogLevel); err != nil {
		return err
	}

	if len(this.SqlFiles) == 0 && strings.TrimSpace(this.SqlDir) == "" {
		return fmt.Errorf("请指定需要分析的 sql 文件(--sql-file) 或者目录(--sql-dir)")
	}

	for _, fileName := range this.SqlFiles {
		ok, err := utils.PathExists(fileName)
		if err != nil {
			return fmt.Errorf("检测 sql 文件是否存在出错, %v", err)
		}
		if !ok {
			return fmt.Errorf("sql 文件不存在, %v", fileName)
		}
	}

	if strings.TrimSpace(this.SqlDir) != "" {
		isDir, err := utils.IsDir(this.SqlDir)
		if err != nil {
			return fmt.Errorf("检测 sql 目录出错, %v", err)
		}
		if !isDir {
			return fmt.Errorf("指定的 sql 目录不是一个目录, %v", this.SqlDir)
		}
	}

	return nil
}

// 需要分析的所有文件, 先是 --sql-file 指定的文件, 后是 --sql-dir 下按路径排序的文件
func (this *OfflineConfig) GetSqlFiles() ([]string, error) {
	files := make([]string, 0, len(this.SqlFiles))
	seen := make(map[string]struct{})
	add := func(f string) {
		if _, ok := seen[f]; ok {
			return
		}
		seen[f] = struct{}{}
		files = append(files, f)
	}

	for _, f := range this.SqlFiles {
		add(f)
	}

	if strings.TrimSpace(this.SqlDir) != "" {
		dirFiles, err := utils.FindSqlFiles(this.SqlDir)
		if err != nil {
			return nil, fmt.Errorf("查找目录下的 sql 文件出错. %s. %s", this.SqlDir, err.Error())
		}
		for _, f := range dirFiles {
			add(f)
		}
	}

	return files, nil
}
