package config

import "fmt"

const (
	LOG_LEVEL = "info"
)

// 指定最小日志级别的 seelog 配置, level: trace, debug, info, warn, error, critical
func LogConfigWithLevel(level string) string {
	return fmt.Sprintf(`
        <seelog type="sync" minlevel="%s">
        	<outputs formatid="main">
                <console />
        	</outputs>
            <formats>
                <format id="main" format="%%Date %%Time %%File:%%Line [%%Level] %%Msg%%n"/>
            </formats>
        </seelog>
    `, level)
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "critical", "off"}

func CheckLogLevel(level string) error {
	for _, l := range logLevels {
		if l == level {
			return nil
		}
	}
	return fmt.Errorf("不支持的日志级别: %s, 可选: %v", level, logLevels)
}
