package dao

import (
	"fmt"
	"strings"

	"github.com/daiguadaidai/tsql-stats/gdbc"
	"github.com/daiguadaidai/tsql-stats/models"
	"github.com/jinzhu/gorm"
)

type DefaultDao struct {
	DB *gorm.DB
}

func NewDefaultDao() *DefaultDao {
	return &DefaultDao{
		DB: gdbc.GetOrmInstance().DB,
	}
}

// 获取所有存储过程, 名称格式为 schema.name
func (this *DefaultDao) FindProcedures() ([]*models.Procedure, error) {
	sql := `
    SELECT s.name + '.' + p.name AS name
    FROM sys.procedures p
    INNER JOIN sys.schemas s
        ON p.schema_id = s.schema_id
    ORDER BY name
`
	var procs []*models.Procedure
	if err := this.DB.Raw(sql).Find(&procs).Error; err != nil {
		return nil, err
	}

	return procs, nil
}

func (this *DefaultDao) FindProcedureNames() ([]string, error) {
	procs, err := this.FindProcedures()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(procs))
	for i, proc := range procs {
		names[i] = proc.Name
	}
	return names, nil
}

// 通过 sp_helptext 获取存储过程的定义, 多行结果拼接成完整文本
func (this *DefaultDao) GetProcedureText(name string) (string, error) {
	sql := `EXEC sys.sp_helptext ?`

	rows, err := this.DB.Raw(sql, name).Rows()
	if err != nil {
		return "", fmt.Errorf("获取存储过程定义出错. %s. %s", name, err.Error())
	}
	defer rows.Close()

	var text strings.Builder
	for rows.Next() {
		line := new(models.ProcTextLine)
		if err := this.DB.ScanRows(rows, line); err != nil {
			return "", fmt.Errorf("读取存储过程定义出错. %s. %s", name, err.Error())
		}
		text.WriteString(line.Text)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("读取存储过程定义出错. %s. %s", name, err.Error())
	}

	return text.String(), nil
}
