package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const SQL_FILE_EXT = ".sql"

// 文件/目录 是否存在
func PathExists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// 是否是目录
func IsDir(p string) (bool, error) {
	info, err := os.Stat(p)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// 递归查找目录下所有的 .sql 文件, 按路径排序
func FindSqlFiles(dir string) ([]string, error) {
	files := make([]string, 0, 10)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), SQL_FILE_EXT) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// 读取文件内容, 去掉 UTF-8 BOM
func ReadSqlFile(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
