package utils

import (
	"strings"
)

// 字符串重复
func StrRepeat(d string, cnt int, sep string) string {
	dSlice := make([]string, cnt)
	for i := 0; i < cnt; i++ {
		dSlice[i] = d
	}

	return strings.Join(dSlice, sep)
}

// 去除 T-SQL 标识符两边的 [] 或 ""
func UnquoteIdentifier(name string) string {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return name
	}
	if (name[0] == '[' && name[len(name)-1] == ']') || (name[0] == '"' && name[len(name)-1] == '"') {
		return name[1 : len(name)-1]
	}
	return name
}

// 将 schema.name 拆分, 没有 schema 的时候 schema 为空
func SplitQualifiedName(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", UnquoteIdentifier(name)
	}
	return UnquoteIdentifier(name[:idx]), UnquoteIdentifier(name[idx+1:])
}

// 不区分大小写是否在列表中
func InStringsFold(s string, items []string) bool {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), s) {
			return true
		}
	}
	return false
}
