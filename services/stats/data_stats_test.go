package stats

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/daiguadaidai/tsql-stats/config"
	"github.com/daiguadaidai/tsql-stats/models"
	"github.com/daiguadaidai/tsql-stats/visitor"
)

type fakeFinder struct {
	names    []string
	texts    map[string]string
	namesErr error
	fetched  []string
}

func (this *fakeFinder) FindProcedureNames() ([]string, error) {
	return this.names, this.namesErr
}

func (this *fakeFinder) GetProcedureText(name string) (string, error) {
	this.fetched = append(this.fetched, name)
	text, ok := this.texts[name]
	if !ok {
		return "", fmt.Errorf("The text for object '%s' is encrypted.", name)
	}
	return text, nil
}

func newFakeFinder() *fakeFinder {
	return &fakeFinder{
		names: []string{"Sales.InsertOrders", "Sales.Encrypted", "Website.Broken"},
		texts: map[string]string{
			"Sales.InsertOrders": `
CREATE PROCEDURE Sales.InsertOrders
AS
BEGIN
    INSERT INTO Sales.Orders (OrderID) VALUES (1)
    DELETE FROM Sales.OrderLines
END
`,
			"Website.Broken": `INSERT INTO T VALUES`,
		},
	}
}

func TestDataStats_Catalog(t *testing.T) {
	finder := newFakeFinder()
	buf := new(bytes.Buffer)

	ds := NewDataStats(NewCatalogSource(finder, config.NewStatsConfig()), NewReporter(buf), false)
	if err := ds.Start(); err != nil {
		t.Fatal(err.Error())
	}

	if len(ds.Units) != 3 {
		t.Fatalf("units: %d", len(ds.Units))
	}
	if ds.Units[0].Status() != STATUS_OK || ds.Units[1].Status() != STATUS_SKIPPED || ds.Units[2].Status() != STATUS_ERROR {
		t.Fatalf("status: %s, %s, %s", ds.Units[0].Status(), ds.Units[1].Status(), ds.Units[2].Status())
	}

	rs := ds.Units[0].Result
	if rs.Inserts.Count != 1 || rs.Inserts.Tables[0].String != "Orders" {
		t.Fatalf("inserts: %+v", rs.Inserts)
	}
	if rs.Deletes.Count != 1 || len(rs.Deletes.Tables) != 0 || rs.Updates.Tables[0].String != "OrderLines" {
		t.Fatalf("deletes: %+v, updates: %+v", rs.Deletes, rs.Updates)
	}

	out := buf.String()
	for _, want := range []string{
		"Sales.InsertOrders\n  Inserts: 1\n      Orders\n  Updates: 0\n      OrderLines\n  Deletes: 1\n",
		"Sales.Encrypted\n   Text not available, skipped\n",
		"Website.Broken\n   Errors found:\n     Line: ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDataStats_CatalogFilter(t *testing.T) {
	finder := newFakeFinder()
	cfg := config.NewStatsConfig()
	cfg.Schemas = []string{"Sales"}

	ds := NewDataStats(NewCatalogSource(finder, cfg), NewReporter(new(bytes.Buffer)), false)
	if err := ds.Start(); err != nil {
		t.Fatal(err.Error())
	}
	if len(finder.fetched) != 2 || finder.fetched[0] != "Sales.InsertOrders" || finder.fetched[1] != "Sales.Encrypted" {
		t.Fatalf("fetched: %v", finder.fetched)
	}
}

func TestDataStats_CatalogError(t *testing.T) {
	finder := newFakeFinder()
	finder.namesErr = fmt.Errorf("login failed")

	ds := NewDataStats(NewCatalogSource(finder, nil), NewReporter(new(bytes.Buffer)), false)
	if err := ds.Start(); err == nil {
		t.Fatal("enumeration error should be returned")
	}
}

func TestDataStats_Summary(t *testing.T) {
	buf := new(bytes.Buffer)
	source := NewCatalogSource(&fakeFinder{
		names: []string{"dbo.first", "dbo.second"},
		texts: map[string]string{
			"dbo.first":  "DROP TABLE A, B",
			"dbo.second": "CREATE TABLE C (ID INT)",
		},
	}, nil)

	ds := NewDataStats(source, NewReporter(buf), true)
	if err := ds.Start(); err != nil {
		t.Fatal(err.Error())
	}

	total := NewTotalStat(ds.Units)
	if total.OK != 2 || total.Counters[visitor.StmtKindDropTable] != 1 || total.Counters[visitor.StmtKindCreateTable] != 1 {
		t.Fatalf("total: %+v", total)
	}
	if !strings.Contains(buf.String(), "Total: 2") {
		t.Fatalf("summary missing:\n%s", buf.String())
	}
}

func TestAnalyzeUnit_EmptyText(t *testing.T) {
	u := AnalyzeUnit(models.NewSourceUnit("empty", ""))
	if u.Status() != STATUS_OK {
		t.Fatalf("empty text status: %s", u.Status())
	}
	for _, kind := range visitor.CountedKinds {
		if u.Count(kind) != 0 {
			t.Fatalf("%s count: %d", kind, u.Count(kind))
		}
	}
}
