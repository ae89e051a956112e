package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daiguadaidai/tsql-stats/visitor"
	"github.com/olekukonko/tablewriter"
)

var kindLabels = map[visitor.StmtKind]string{
	visitor.StmtKindInsert:      "Inserts",
	visitor.StmtKindUpdate:      "Updates",
	visitor.StmtKindDelete:      "Deletes",
	visitor.StmtKindCreateTable: "Creates",
	visitor.StmtKindDropTable:   "Drops",
}

// 输出每个单元的分析结果
type Reporter struct {
	W io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		W: w,
	}
}

func (this *Reporter) WriteUnit(u *UnitStat) {
	fmt.Fprintln(this.W, u.Name)

	switch u.Status() {
	case STATUS_SKIPPED:
		fmt.Fprintln(this.W, "   Text not available, skipped")
	case STATUS_ERROR:
		this.WriteErrors(u.Errors)
	default:
		this.WriteResult(u.Result)
	}
}

func (this *Reporter) WriteErrors(errs []*visitor.ParseError) {
	fmt.Fprintln(this.W, "   Errors found:")
	for _, e := range errs {
		fmt.Fprintf(this.W, "     %s\n", e.String())
	}
}

// 表名为空的时候输出空行
func (this *Reporter) WriteResult(rs *visitor.StatsResult) {
	for _, kind := range visitor.CountedKinds {
		stat := rs.Get(kind)
		fmt.Fprintf(this.W, "  %s: %d\n", kindLabels[kind], stat.Count)
		for _, table := range stat.Tables {
			fmt.Fprintf(this.W, "      %s\n", table.String)
		}
	}
}

// 汇总表格
func (this *Reporter) WriteSummary(units []*UnitStat) {
	header := []string{"Name", "Status"}
	for _, kind := range visitor.CountedKinds {
		header = append(header, kindLabels[kind])
	}

	table := tablewriter.NewWriter(this.W)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for _, u := range units {
		row := []string{u.Name, u.Status()}
		for _, kind := range visitor.CountedKinds {
			row = append(row, strconv.Itoa(u.Count(kind)))
		}
		table.Append(row)
	}

	total := NewTotalStat(units)
	footer := []string{fmt.Sprintf("Total: %d", total.Units), fmt.Sprintf("ok: %d, error: %d, skipped: %d", total.OK, total.Errors, total.Skipped)}
	for _, kind := range visitor.CountedKinds {
		footer = append(footer, strconv.Itoa(total.Counters[kind]))
	}
	table.SetFooter(footer)

	fmt.Fprintln(this.W)
	table.Render()
}
