package visitor

import (
	"fmt"
	"strings"

	"github.com/cihub/seelog"
	"github.com/ha1tch/tsqlparser/ast"
)

const (
	VISIT_SELECT                 = "Select"
	VISIT_QUERY_EXPRESSION       = "QueryExpression"
	VISIT_QUERY_SPECIFICATION    = "QuerySpecification"
	VISIT_SELECT_STAR_EXPRESSION = "SelectStarExpression"
)

// 打印访问到的 SELECT 结构, 用于查看解析结果
type SelectVisitor struct {
	CurrentNodeLevel int
	Visited          []string
}

func NewSelectVisitor() *SelectVisitor {
	return &SelectVisitor{
		Visited: make([]string, 0, 4),
	}
}

func (this *SelectVisitor) Enter(stmt ast.Statement) bool {
	this.CurrentNodeLevel++

	switch node := stmt.(type) {
	case *ast.SelectStatement:
		this.enterSelect(node)
		return true
	default:
		this.visit(strings.TrimPrefix(fmt.Sprintf("%T", stmt), "*ast."), stmt.String())
	}

	return false
}

func (this *SelectVisitor) Leave(stmt ast.Statement) {
	this.CurrentNodeLevel--
}

func (this *SelectVisitor) enterSelect(node *ast.SelectStatement) {
	this.visit(VISIT_SELECT, node.String())

	if node.Union == nil {
		this.visitQuerySpecification(node)
		return
	}

	// UNION/INTERSECT/EXCEPT
	this.visit(VISIT_QUERY_EXPRESSION, node.String())
	for spec := node; spec != nil; {
		this.visitQuerySpecification(spec)
		if spec.Union == nil {
			break
		}
		spec = spec.Union.Right
	}
}

func (this *SelectVisitor) visitQuerySpecification(node *ast.SelectStatement) {
	spec := *node
	spec.Union = nil
	this.visit(VISIT_QUERY_SPECIFICATION, spec.String())

	for _, col := range node.Columns {
		if col.AllColumns {
			this.visit(VISIT_SELECT_STAR_EXPRESSION, col.String())
		}
	}
}

func (this *SelectVisitor) visit(kind string, text string) {
	this.Visited = append(this.Visited, kind)
	seelog.Infof("Visiting %s: %s", kind, text)
}

// 指定类型访问的次数
func (this *SelectVisitor) VisitCount(kind string) int {
	cnt := 0
	for _, v := range this.Visited {
		if v == kind {
			cnt++
		}
	}
	return cnt
}

func VisitSelects(tree *ast.Program) *SelectVisitor {
	vst := NewSelectVisitor()
	Walk(vst, tree)
	return vst
}
