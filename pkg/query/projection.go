// Package query provides SQL query construction with view-to-column projection mapping.
package query

import "strings"

// ProjectionMap maps view field names to aliased database columns for a single table.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	order  []string
	fields map[string]string
}

// NewProjectionMap creates a projection for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under the given view name and returns the map for chaining.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	p.fields[viewName] = p.alias + "." + column
	p.order = append(p.order, viewName)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the schema-qualified table name with its alias.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column resolves a view name to its aliased column. Unknown names are returned as-is.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.fields[viewName]; ok {
		return col
	}
	return viewName
}

// Columns returns all projected columns as a comma-separated list in registration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns all projected columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	cols := make([]string, len(p.order))
	for i, name := range p.order {
		cols[i] = p.fields[name]
	}
	return cols
}

// SortField identifies a view field and sort direction for ordering results.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression into sort fields.
// A "-" prefix marks a field as descending. Empty segments are skipped.
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}
