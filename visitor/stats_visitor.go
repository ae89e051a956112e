package visitor

import (
	"database/sql"
	"strings"

	"github.com/cihub/seelog"
	"github.com/daiguadaidai/tsql-stats/utils"
	"github.com/ha1tch/tsqlparser/ast"
)

// 一种语句的数量以及操作的表, 表名无法确定的时候 Valid 为 false
type TableStat struct {
	Count  int
	Tables []sql.NullString
}

func NewTableStat() *TableStat {
	return &TableStat{
		Tables: make([]sql.NullString, 0),
	}
}

func (this *TableStat) add(tables ...sql.NullString) {
	this.Count++
	this.Tables = append(this.Tables, tables...)
}

type StatsResult struct {
	Inserts *TableStat
	Updates *TableStat
	Deletes *TableStat
	Creates *TableStat
	Drops   *TableStat
}

func NewStatsResult() *StatsResult {
	return &StatsResult{
		Inserts: NewTableStat(),
		Updates: NewTableStat(),
		Deletes: NewTableStat(),
		Creates: NewTableStat(),
		Drops:   NewTableStat(),
	}
}

func (this *StatsResult) Get(kind StmtKind) *TableStat {
	switch kind {
	case StmtKindInsert:
		return this.Inserts
	case StmtKindUpdate:
		return this.Updates
	case StmtKindDelete:
		return this.Deletes
	case StmtKindCreateTable:
		return this.Creates
	case StmtKindDropTable:
		return this.Drops
	}
	return nil
}

type StatsVisitor struct {
	CurrentNodeLevel int
	Result           *StatsResult
}

func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{
		Result: NewStatsResult(),
	}
}

func (this *StatsVisitor) Enter(stmt ast.Statement) bool {
	this.CurrentNodeLevel++

	switch ClassifyStmt(stmt) {
	case StmtKindInsert:
		this.enterInsert(stmt.(*ast.InsertStatement))
	case StmtKindUpdate:
		this.enterUpdate(stmt.(*ast.UpdateStatement))
	case StmtKindDelete:
		this.enterDelete(stmt.(*ast.DeleteStatement))
	case StmtKindCreateTable:
		this.enterCreateTable(stmt.(*ast.CreateTableStatement))
	case StmtKindDropTable:
		this.enterDropTable(stmt.(*ast.DropTableStatement))
	default:
		if node, ok := stmt.(*ast.SelectStatement); ok {
			seelog.Debugf("%sSELECT 不统计: %s", utils.StrRepeat(" ", (this.CurrentNodeLevel-1)*4, ""), node.String())
		}
	}

	return false
}

func (this *StatsVisitor) Leave(stmt ast.Statement) {
	this.CurrentNodeLevel--
}

func (this *StatsVisitor) enterInsert(node *ast.InsertStatement) {
	this.Result.Inserts.add(insertTargetName(node.Table))
}

func (this *StatsVisitor) enterUpdate(node *ast.UpdateStatement) {
	this.Result.Updates.add(namedTableName(node.Table))
}

// DELETE 的表名记录在 Updates 中, Deletes 只计数
func (this *StatsVisitor) enterDelete(node *ast.DeleteStatement) {
	this.Result.Deletes.Count++
	this.Result.Updates.Tables = append(this.Result.Updates.Tables, deleteTargetName(node))
}

// DELETE o FROM dbo.Orders o 的目标只在 Alias 中
func deleteTargetName(node *ast.DeleteStatement) sql.NullString {
	if node.Table == nil && node.TargetFunc == nil && node.Alias != nil {
		return namedTableName(&ast.QualifiedIdentifier{Parts: []*ast.Identifier{node.Alias}})
	}
	return namedTableName(node.Table)
}

func (this *StatsVisitor) enterCreateTable(node *ast.CreateTableStatement) {
	this.Result.Creates.add(namedTableName(node.Name))
}

// 一条 DROP TABLE 只计数一次, 所有表名都记录
func (this *StatsVisitor) enterDropTable(node *ast.DropTableStatement) {
	names := make([]sql.NullString, len(node.Tables))
	for i, table := range node.Tables {
		names[i] = namedTableName(table)
	}
	this.Result.Drops.add(names...)
}

// 统计语法树, 每次使用新的 visitor
func GetStats(tree *ast.Program) *StatsResult {
	vst := NewStatsVisitor()
	Walk(vst, tree)
	return vst.Result
}

func isTableVariable(name string) bool {
	return strings.HasPrefix(name, "@")
}

// 多部分名称的最后一部分
func baseIdentifier(table *ast.QualifiedIdentifier) (string, bool) {
	if table == nil || len(table.Parts) == 0 {
		return "", false
	}
	last := table.Parts[len(table.Parts)-1]
	if last == nil {
		return "", false
	}
	name := utils.UnquoteIdentifier(last.Value)
	if name == "" {
		return "", false
	}
	return name, true
}

// 普通表返回表名, 表变量返回变量名
func insertTargetName(table *ast.QualifiedIdentifier) sql.NullString {
	name, ok := baseIdentifier(table)
	if !ok {
		return sql.NullString{}
	}
	return sql.NullString{String: name, Valid: true}
}

// 只有普通表才有表名, 表变量或者其他目标为空
func namedTableName(table *ast.QualifiedIdentifier) sql.NullString {
	name, ok := baseIdentifier(table)
	if !ok || isTableVariable(name) {
		return sql.NullString{}
	}
	return sql.NullString{String: name, Valid: true}
}
