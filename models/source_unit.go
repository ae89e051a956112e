package models

// 一个需要分析的 T-SQL 单元: 一条语句, 一个存储过程或者一个文件
type SourceUnit struct {
	Name    string
	Text    string
	HasText bool // 获取文本失败的时候为 false
}

func NewSourceUnit(name string, text string) *SourceUnit {
	return &SourceUnit{
		Name:    name,
		Text:    text,
		HasText: true,
	}
}

// 没有获取到文本的单元
func NewAbsentSourceUnit(name string) *SourceUnit {
	return &SourceUnit{
		Name: name,
	}
}
