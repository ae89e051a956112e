package visitor

import (
	"github.com/ha1tch/tsqlparser/ast"
)

type StmtKind int

const (
	StmtKindInsert StmtKind = iota
	StmtKindUpdate
	StmtKindDelete
	StmtKindCreateTable
	StmtKindDropTable
	StmtKindOther
)

// 需要统计的语句类型, 按输出顺序
var CountedKinds = []StmtKind{
	StmtKindInsert,
	StmtKindUpdate,
	StmtKindDelete,
	StmtKindCreateTable,
	StmtKindDropTable,
}

func (this StmtKind) String() string {
	switch this {
	case StmtKindInsert:
		return "Insert"
	case StmtKindUpdate:
		return "Update"
	case StmtKindDelete:
		return "Delete"
	case StmtKindCreateTable:
		return "CreateTable"
	case StmtKindDropTable:
		return "DropTable"
	}
	return "Other"
}

func ClassifyStmt(stmt ast.Statement) StmtKind {
	switch stmt.(type) {
	case *ast.InsertStatement:
		return StmtKindInsert
	case *ast.UpdateStatement:
		return StmtKindUpdate
	case *ast.DeleteStatement:
		return StmtKindDelete
	case *ast.CreateTableStatement:
		return StmtKindCreateTable
	case *ast.DropTableStatement:
		return StmtKindDropTable
	}
	return StmtKindOther
}
