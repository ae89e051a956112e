package models

// sys.procedures 中的存储过程, name 为 schema.name
type Procedure struct {
	Name string `gorm:"column:name"`
}

func (this *Procedure) String() string {
	return this.Name
}

// sp_helptext 返回的一行定义文本
type ProcTextLine struct {
	Text string `gorm:"column:Text"`
}
