package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// --config 指定的 yaml 配置文件
type FileConfig struct {
	DB    *DBConfig `yaml:"db"`
	Query string    `yaml:"query"`
}

func LoadFileConfig(filename string) (*FileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件出错. %s. %s", filename, err.Error())
	}

	fc := new(FileConfig)
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("解析配置文件出错. %s. %s", filename, err.Error())
	}

	return fc, nil
}
