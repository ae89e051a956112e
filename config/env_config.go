package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DOTENV_FILE = ".env"

	ENV_DB_HOST     = "MSSQL_HOST"
	ENV_DB_PORT     = "MSSQL_PORT"
	ENV_DB_USERNAME = "MSSQL_USER"
	ENV_DB_PASSWORD = "MSSQL_PASSWORD"
	ENV_DB_DATABASE = "MSSQL_DATABASE"
)

// 加载 .env 文件到环境变量, 已经存在的环境变量不会被覆盖. 文件不存在时忽略
func LoadDotEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{DOTENV_FILE}
	}
	for _, filename := range filenames {
		_ = godotenv.Load(filename)
	}
}

func EnvString(key string, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return defaultValue
}

func EnvInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return defaultValue
	}
	return i
}

// 环境变量中的数据库默认配置, 没有设置的使用常量默认值
func NewDBConfigFromEnv() *DBConfig {
	return &DBConfig{
		Host:              EnvString(ENV_DB_HOST, DB_HOST),
		Port:              EnvInt(ENV_DB_PORT, DB_PORT),
		Instance:          DB_INSTANCE,
		Username:          EnvString(ENV_DB_USERNAME, DB_USERNAME),
		Password:          EnvString(ENV_DB_PASSWORD, DB_PASSWORD),
		Database:          EnvString(ENV_DB_DATABASE, DB_DATABASE),
		Encrypt:           DB_ENCRYPT,
		Timeout:           DB_TIMEOUT,
		MaxOpenConns:      DB_MAX_OPEN_CONNS,
		MaxIdelConns:      DB_MAX_IDEL_CONNS,
		PasswordIsDecrypt: DB_PASSWORD_IS_DECRYPT,
		TrustedConnection: DB_TRUSTED_CONNECTION,
	}
}
