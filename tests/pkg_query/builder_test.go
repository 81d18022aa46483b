package pkg_query_test

import (
	"strings"
	"testing"

	"github.com/studynova/ingest/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "sessions", "s").
		Project("id", "Id").
		Project("filename", "Filename").
		Project("status", "Status")
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Filename"})

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.sessions s"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}

	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Filename"})

	sql, args := b.BuildPage(3, 10)

	if !strings.Contains(sql, "SELECT s.id, s.filename, s.status FROM public.sessions s") {
		t.Errorf("BuildPage() missing select clause, got %q", sql)
	}

	if !strings.Contains(sql, "ORDER BY s.filename ASC") {
		t.Errorf("BuildPage() missing order by, got %q", sql)
	}

	if !strings.Contains(sql, "LIMIT 10 OFFSET 20") {
		t.Errorf("BuildPage() missing limit/offset, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildSingle("Id", "abc")

	if !strings.Contains(sql, "WHERE s.id = $1") {
		t.Errorf("BuildSingle() missing where clause, got %q", sql)
	}

	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestBuilder_WhereConditions_ParameterNumbering(t *testing.T) {
	status := "processing"
	search := "algebra"

	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Filename"}).
		WhereEquals("Status", status).
		WhereSearch(&search, "Filename", "Status")

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "s.status = $1") {
		t.Errorf("missing equality condition, got %q", sql)
	}

	if !strings.Contains(sql, "(s.filename ILIKE $2 OR s.status ILIKE $3)") {
		t.Errorf("missing search condition, got %q", sql)
	}

	want := []any{"processing", "%algebra%", "%algebra%"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestBuilder_WhereContains_IgnoresNilAndEmpty(t *testing.T) {
	empty := ""

	b := query.NewBuilder(newTestProjection()).
		WhereContains("Filename", nil).
		WhereContains("Filename", &empty)

	sql, args := b.BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no conditions, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_OrderByFields_OverridesDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Filename"}).
		OrderByFields([]query.SortField{
			{Field: "Status", Descending: true},
			{Field: "Id"},
		})

	sql, _ := b.BuildPage(1, 20)

	if !strings.Contains(sql, "ORDER BY s.status DESC, s.id ASC") {
		t.Errorf("OrderByFields not applied, got %q", sql)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("-Status, Filename,")

	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2", len(fields))
	}

	if fields[0].Field != "Status" || !fields[0].Descending {
		t.Errorf("fields[0] = %+v, want Status descending", fields[0])
	}

	if fields[1].Field != "Filename" || fields[1].Descending {
		t.Errorf("fields[1] = %+v, want Filename ascending", fields[1])
	}
}
