package visitor

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ha1tch/tsqlparser"
	"github.com/ha1tch/tsqlparser/ast"
)

// 解析器报错格式: line N, col M: message
var errorLocationRegexp = regexp.MustCompile(`(?s)^line (\d+), col (\d+): (.*)$`)

type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (this *ParseError) String() string {
	return fmt.Sprintf("Line: %d  Col: %d: %s", this.Line, this.Column, this.Message)
}

// 解析器返回的错误字符串转化为 ParseError, 没有位置信息的 Line 和 Column 为 0
func NewParseError(raw string) *ParseError {
	matches := errorLocationRegexp.FindStringSubmatch(raw)
	if matches == nil {
		return &ParseError{Message: raw}
	}

	line, _ := strconv.Atoi(matches[1])
	column, _ := strconv.Atoi(matches[2])
	return &ParseError{
		Line:    line,
		Column:  column,
		Message: matches[3],
	}
}

// 解析结果, Tree 和 Errors 只有一个有值
type ParseOutcome struct {
	Tree   *ast.Program
	Errors []*ParseError
}

func (this *ParseOutcome) HasErrors() bool {
	return len(this.Errors) > 0
}

func ParseSQL(text string) *ParseOutcome {
	program, errs := tsqlparser.Parse(text)
	if len(errs) > 0 {
		parseErrors := make([]*ParseError, len(errs))
		for i, e := range errs {
			parseErrors[i] = NewParseError(e)
		}
		return &ParseOutcome{Errors: parseErrors}
	}

	if program == nil {
		program = &ast.Program{}
	}
	return &ParseOutcome{Tree: program}
}
