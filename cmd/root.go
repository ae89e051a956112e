// Copyright © 2018 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/services/offline"
	"github.com/daiguadaidai/tsql-stats/services/simple"
	"github.com/daiguadaidai/tsql-stats/services/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsql-stats",
	Short: "T-SQL 语句统计工具",
}

// simpleCmd 是 rootCmd 的一个子命令
var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "解析一条sql并打印 SELECT 结构",
	Long: `解析一条sql, 有语法错误输出错误位置, 没有错误打印访问到的 SELECT 结构. 如下:
Example:
./tsql-stats simple \
    --query="Select * from customer" \
    --pause=false
`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(sc.ConfigFile)
		if err != nil || fc == nil {
			return err
		}
		sc.MergeFrom(fc, cmd.Flags().Changed)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		simple.Start(sc)
	},
}

// statsCmd 是 rootCmd 的一个子命令
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "统计数据库中所有存储过程的 DML/DDL 语句",
	Long: `统计数据库中所有存储过程的 INSERT/UPDATE/DELETE/CREATE TABLE/DROP TABLE 语句以及操作的表. 如下:
Example:
./tsql-stats stats \
    --db-host="127.0.0.1" \
    --db-port=1433 \
    --db-username="sa" \
    --db-password="password" \
    --db-database="WideWorldImporters" \
    --schema="Sales" \
    --proc="Website.SearchForPeople" \
    --summary

使用配置文件
./tsql-stats stats --config=tsql-stats.yaml
`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(stc.ConfigFile)
		if err != nil || fc == nil {
			return err
		}
		stdbc.MergeFrom(fc.DB, cmd.Flags().Changed)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		stats.Start(stc, stdbc)
	},
}

// offlineCmd 是 rootCmd 的一个子命令
var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "统计本地 sql 文件的 DML/DDL 语句",
	Long: `统计本地 .sql 文件中的 INSERT/UPDATE/DELETE/CREATE TABLE/DROP TABLE 语句以及操作的表. 如下:
Example:
./tsql-stats offline \
    --sql-file="/tmp/proc1.sql" \
    --sql-file="/tmp/proc2.sql" \
    --sql-dir="/tmp/procs" \
    --summary
`,
	Run: func(cmd *cobra.Command, args []string) {
		offline.Start(oc)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// .env 中的配置作为数据库参数的默认值
	config.LoadDotEnv()

	addSimpleCMD()
	addStatsCMD()
	addOfflineCMD()
}

// 读取 --config 指定的配置文件, 没有指定返回 nil
func loadFileConfig(filename string) (*config.FileConfig, error) {
	if filename == "" {
		return nil, nil
	}
	return config.LoadFileConfig(filename)
}

// 公共参数
func addCommonFlags(flags *pflag.FlagSet, pause *bool, logLevel *string) {
	flags.BoolVar(pause, "pause", config.PAUSE_AFTER_EXIT, "执行完成后等待回车再退出")
	flags.StringVar(logLevel, "log-level", config.LOG_LEVEL, "日志级别: trace, debug, info, warn, error, critical")
}

var sc *config.SimpleConfig

// 添加解析单条sql子命令
func addSimpleCMD() {
	rootCmd.AddCommand(simpleCmd)
	sc = config.NewSimpleConfig()
	simpleCmd.PersistentFlags().StringVar(&sc.Query, config.FLAG_QUERY, config.SIMPLE_QUERY, "需要解析的sql")
	simpleCmd.PersistentFlags().StringVar(&sc.ConfigFile, "config", "", "yaml 配置文件, 可以指定 query")
	addCommonFlags(simpleCmd.PersistentFlags(), &sc.Pause, &sc.LogLevel)
}

var stc *config.StatsConfig
var stdbc *config.DBConfig

// 添加统计存储过程子命令
func addStatsCMD() {
	rootCmd.AddCommand(statsCmd)
	stc = config.NewStatsConfig()
	statsCmd.PersistentFlags().StringSliceVar(&stc.Schemas, "schema", make([]string, 0, 1), "只统计指定 schema 下的存储过程, 该参数可以指定多个")
	statsCmd.PersistentFlags().StringSliceVar(&stc.Procs, "proc", make([]string, 0, 1), "只统计指定的存储过程(name 或者 schema.name), 该参数可以指定多个")
	statsCmd.PersistentFlags().BoolVar(&stc.Summary, "summary", false, "最后输出汇总表格")
	statsCmd.PersistentFlags().StringVar(&stc.ConfigFile, "config", "", "yaml 配置文件, 可以指定数据库链接信息")
	addCommonFlags(statsCmd.PersistentFlags(), &stc.Pause, &stc.LogLevel)

	// 链接的数据库配置, 默认值可以通过环境变量或者 .env 指定
	envdbc := config.NewDBConfigFromEnv()
	stdbc = new(config.DBConfig)
	statsCmd.PersistentFlags().StringVar(&stdbc.Host, config.FLAG_DB_HOST, envdbc.Host, "数据库host")
	statsCmd.PersistentFlags().IntVar(&stdbc.Port, config.FLAG_DB_PORT, envdbc.Port, "数据库port")
	statsCmd.PersistentFlags().StringVar(&stdbc.Instance, config.FLAG_DB_INSTANCE, envdbc.Instance, "数据库实例名")
	statsCmd.PersistentFlags().StringVar(&stdbc.Username, config.FLAG_DB_USERNAME, envdbc.Username, "数据库用户名")
	statsCmd.PersistentFlags().StringVar(&stdbc.Password, config.FLAG_DB_PASSWORD, envdbc.Password, "数据库密码")
	statsCmd.PersistentFlags().StringVar(&stdbc.Database, config.FLAG_DB_DATABASE, envdbc.Database, "数据库名称")
	statsCmd.PersistentFlags().StringVar(&stdbc.Encrypt, config.FLAG_DB_ENCRYPT, envdbc.Encrypt, "链接加密: disable, false, true")
	statsCmd.PersistentFlags().IntVar(&stdbc.Timeout, config.FLAG_DB_TIMEOUT, envdbc.Timeout, "数据库timeout")
	statsCmd.PersistentFlags().IntVar(&stdbc.MaxIdelConns, config.FLAG_DB_MAX_IDEL_CONNS, envdbc.MaxIdelConns, "数据库最大空闲连接数")
	statsCmd.PersistentFlags().IntVar(&stdbc.MaxOpenConns, config.FLAG_DB_MAX_OPEN_CONNS, envdbc.MaxOpenConns, "数据库最大连接数")
	statsCmd.PersistentFlags().BoolVar(&stdbc.PasswordIsDecrypt, config.FLAG_DB_PASSWORD_IS_DECRYPT, envdbc.PasswordIsDecrypt, "数据库密码是否需要解密")
	statsCmd.PersistentFlags().BoolVar(&stdbc.TrustedConnection, config.FLAG_DB_TRUSTED_CONNECTION, envdbc.TrustedConnection, "使用 Windows 认证")
}

var oc *config.OfflineConfig

// 添加统计本地sql文件子命令
func addOfflineCMD() {
	rootCmd.AddCommand(offlineCmd)
	oc = config.NewOffileConfig()
	offlineCmd.PersistentFlags().StringSliceVar(&oc.SqlFiles, "sql-file", make([]string, 0, 1), "需要统计的 sql 文件, 该参数可以指定多个")
	offlineCmd.PersistentFlags().StringVar(&oc.SqlDir, "sql-dir", "", "统计目录下所有的 .sql 文件")
	offlineCmd.PersistentFlags().BoolVar(&oc.Summary, "summary", false, "最后输出汇总表格")
	addCommonFlags(offlineCmd.PersistentFlags(), &oc.Pause, &oc.LogLevel)
}
