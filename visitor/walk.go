package visitor

import (
	"github.com/ha1tch/tsqlparser/ast"
)

type Visitor interface {
	// 返回 true 不再访问子语句
	Enter(stmt ast.Statement) (skipChildren bool)
	Leave(stmt ast.Statement)
}

// 深度优先, 先序, 从左到右访问所有语句
func Walk(v Visitor, tree *ast.Program) {
	if tree == nil {
		return
	}
	for _, stmt := range tree.Statements {
		walkStatement(v, stmt)
	}
}

func walkStatement(v Visitor, stmt ast.Statement) {
	if stmt == nil {
		return
	}

	if !v.Enter(stmt) {
		for _, child := range childStatements(stmt) {
			walkStatement(v, child)
		}
	}
	v.Leave(stmt)
}

// 复合语句中包含的子语句
func childStatements(stmt ast.Statement) []ast.Statement {
	children := make([]ast.Statement, 0, 2)

	switch s := stmt.(type) {
	case *ast.CreateProcedureStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.AlterProcedureStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.CreateFunctionStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.AlterFunctionStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.CreateTriggerStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.AlterTriggerStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.BeginEndBlock:
		children = append(children, s.Statements...)
	case *ast.IfStatement:
		if s.Consequence != nil {
			children = append(children, s.Consequence)
		}
		if s.Alternative != nil {
			children = append(children, s.Alternative)
		}
	case *ast.WhileStatement:
		if s.Body != nil {
			children = append(children, s.Body)
		}
	case *ast.TryCatchStatement:
		if s.TryBlock != nil {
			children = append(children, s.TryBlock)
		}
		if s.CatchBlock != nil {
			children = append(children, s.CatchBlock)
		}
	case *ast.WithStatement:
		if s.Query != nil {
			children = append(children, s.Query)
		}
	case *ast.WithXmlnamespacesStatement:
		if s.Query != nil {
			children = append(children, s.Query)
		}
	}

	return children
}
