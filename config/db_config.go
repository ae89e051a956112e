package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/peep"
)

const (
	DB_HOST                = "localhost"
	DB_PORT                = 1433
	DB_INSTANCE            = ""
	DB_USERNAME            = ""
	DB_PASSWORD            = ""
	DB_DATABASE            = "WideWorldImporters"
	DB_APP_NAME            = "tsql-stats"
	DB_ENCRYPT             = "disable"
	DB_MAX_OPEN_CONNS      = 1
	DB_MAX_IDEL_CONNS      = 1
	DB_TIMEOUT             = 10
	DB_PASSWORD_IS_DECRYPT = false
	DB_TRUSTED_CONNECTION  = false
)

// 命令行参数名, 配置文件合并时用来判断参数是否被显式指定
const (
	FLAG_DB_HOST                = "db-host"
	FLAG_DB_PORT                = "db-port"
	FLAG_DB_INSTANCE            = "db-instance"
	FLAG_DB_USERNAME            = "db-username"
	FLAG_DB_PASSWORD            = "db-password"
	FLAG_DB_DATABASE            = "db-database"
	FLAG_DB_ENCRYPT             = "db-encrypt"
	FLAG_DB_TIMEOUT             = "db-timeout"
	FLAG_DB_MAX_OPEN_CONNS      = "db-max-open-conns"
	FLAG_DB_MAX_IDEL_CONNS      = "db-max-idel-conns"
	FLAG_DB_PASSWORD_IS_DECRYPT = "db-password-is-decrypt"
	FLAG_DB_TRUSTED_CONNECTION  = "db-trusted-connection"
)

var dbConfig *DBConfig

type DBConfig struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	Instance          string `yaml:"instance"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
	Database          string `yaml:"database"`
	Encrypt           string `yaml:"encrypt"`
	Timeout           int    `yaml:"timeout"`
	MaxOpenConns      int    `yaml:"max_open_conns"`
	MaxIdelConns      int    `yaml:"max_idel_conns"`
	PasswordIsDecrypt bool   `yaml:"password_is_decrypt"`
	TrustedConnection bool   `yaml:"trusted_connection"`
}

// 生成 go-mssqldb 使用的 sqlserver:// 链接串
func (this *DBConfig) GetDataSource() string {
	query := url.Values{}
	query.Set("database", this.Database)
	query.Set("app name", DB_APP_NAME)
	query.Set("connection timeout", strconv.Itoa(this.Timeout))
	if this.Encrypt != "" {
		query.Set("encrypt", this.Encrypt)
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     this.hostPort(),
		RawQuery: query.Encode(),
	}
	if this.Instance != "" {
		u.Path = this.Instance
	}
	// 使用 Windows 认证的时候不带用户名密码
	if !this.TrustedConnection && this.Username != "" {
		u.User = url.UserPassword(this.Username, this.GetPassword())
	}

	return u.String()
}

func (this *DBConfig) hostPort() string {
	if this.Instance != "" || this.Port <= 0 {
		return this.Host
	}
	return net.JoinHostPort(this.Host, strconv.Itoa(this.Port))
}

// 打印用, 不包含密码
func (this *DBConfig) Target() string {
	if this.Instance != "" {
		return fmt.Sprintf("%s\\%s/%s", this.Host, this.Instance, this.Database)
	}
	return fmt.Sprintf("%s:%d/%s", this.Host, this.Port, this.Database)
}

func (this *DBConfig) Check() error {
	if strings.TrimSpace(this.Host) == "" {
		return fmt.Errorf("数据库host不能为空")
	}
	if strings.TrimSpace(this.Database) == "" {
		return fmt.Errorf("数据库不能为空")
	}
	if !this.TrustedConnection && strings.TrimSpace(this.Username) == "" {
		return fmt.Errorf("没有指定数据库用户名, 如需使用 Windows 认证请指定 --%s", FLAG_DB_TRUSTED_CONNECTION)
	}
	if this.MaxOpenConns < 1 {
		this.MaxOpenConns = DB_MAX_OPEN_CONNS
	}
	if this.MaxIdelConns < 0 {
		this.MaxIdelConns = DB_MAX_IDEL_CONNS
	}

	return nil
}

// 使用配置文件中的值覆盖没有显式指定的命令行参数
func (this *DBConfig) MergeFrom(other *DBConfig, changed func(flagName string) bool) {
	if other == nil {
		return
	}
	if !changed(FLAG_DB_HOST) && other.Host != "" {
		this.Host = other.Host
	}
	if !changed(FLAG_DB_PORT) && other.Port != 0 {
		this.Port = other.Port
	}
	if !changed(FLAG_DB_INSTANCE) && other.Instance != "" {
		this.Instance = other.Instance
	}
	if !changed(FLAG_DB_USERNAME) && other.Username != "" {
		this.Username = other.Username
	}
	if !changed(FLAG_DB_PASSWORD) && other.Password != "" {
		this.Password = other.Password
	}
	if !changed(FLAG_DB_DATABASE) && other.Database != "" {
		this.Database = other.Database
	}
	if !changed(FLAG_DB_ENCRYPT) && other.Encrypt != "" {
		this.Encrypt = other.Encrypt
	}
	if !changed(FLAG_DB_TIMEOUT) && other.Timeout != 0 {
		this.Timeout = other.Timeout
	}
	if !changed(FLAG_DB_MAX_OPEN_CONNS) && other.MaxOpenConns != 0 {
		this.MaxOpenConns = other.MaxOpenConns
	}
	if !changed(FLAG_DB_MAX_IDEL_CONNS) && other.MaxIdelConns != 0 {
		this.MaxIdelConns = other.MaxIdelConns
	}
	if !changed(FLAG_DB_PASSWORD_IS_DECRYPT) && other.PasswordIsDecrypt {
		this.PasswordIsDecrypt = true
	}
	if !changed(FLAG_DB_TRUSTED_CONNECTION) && other.TrustedConnection {
		this.TrustedConnection = true
	}
}

// 设置 DBConfig
func SetDBConfig(dbc *DBConfig) {
	dbConfig = dbc
}

func GetDBConfig() *DBConfig {
	return dbConfig
}

// 获取密码, 有判断是否需要进行解密
func (this *DBConfig) GetPassword() string {
	if this.PasswordIsDecrypt {
		pwd, err := peep.Decrypt(this.Password)
		if err != nil {
			seelog.Warnf("密码解密出错, 将使用未解析串作为密码. %s", err.Error())
			return this.Password
		}
		return pwd
	}
	return this.Password
}
