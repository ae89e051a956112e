package config

import (
	"fmt"
	"strings"
)

const (
	SIMPLE_QUERY     = "Select * from customer"
	ADHOC_UNIT_NAME  = "ad-hoc"
	PAUSE_AFTER_EXIT = true
)

const (
	FLAG_QUERY = "query"
)

type SimpleConfig struct {
	Query      string
	Pause      bool
	LogLevel   string
	ConfigFile string
}

func NewSimpleConfig() *SimpleConfig {
	return &SimpleConfig{
		Query:    SIMPLE_QUERY,
		Pause:    PAUSE_AFTER_EXIT,
		LogLevel: LOG_LEVEL,
	}
}

// 配置文件中的 query 只在没有指定 --query 的时候生效
func (this *SimpleConfig) MergeFrom(fc *FileConfig, changed func(flagName string) bool) {
	if fc == nil {
		return
	}
	if !changed(FLAG_QUERY) && strings.TrimSpace(fc.Query) != "" {
		this.Query = fc.Query
	}
}

func (this *SimpleConfig) Check() error {
	if strings.TrimSpace(this.Query) == "" {
		return fmt.Errorf("请指定需要解析的sql语句")
	}
	if err := CheckLogLevel(this.LogLevel); err != nil {
		return err
	}

	return nil
}
