// Package tabular turns delimited text into typed tables.
package tabular

import (
	"fmt"

	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/model"
)

// Type is the native type of the values held by a Column.
type Type int

// Column types. Untyped columns hold the raw cell text and are produced when
// strict typing fails.
const (
	Untyped Type = iota
	Integer
	Number
	String
	Bool
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "int64"
	case Number:
		return "float64"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return "untyped"
	}
}

// TypeOf maps a schema type tag onto a column type.
func TypeOf(tag model.ColumnType) (Type, error) {
	switch tag {
	case "integer":
		return Integer, nil
	case "number":
		return Number, nil
	case "string":
		return String, nil
	case "bool":
		return Bool, nil
	}
	return Untyped, clienterror.Newf(clienterror.Configuration, "unsupported column type %q", string(tag))
}

// Column is a named, typed column. Values hold int64, float64, string or
// bool according to Type; empty cells in non-text columns are nil.
type Column struct {
	Name   string
	Type   Type
	Values []interface{}
}

// Table is an ordered set of equally long columns.
type Table struct {
	Columns []Column
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the values of row i across all columns.
func (t *Table) Row(i int) ([]interface{}, error) {
	if i < 0 || i >= t.Rows() {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, t.Rows())
	}
	row := make([]interface{}, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row, nil
}

// Typed reports whether every column carries a declared type, i.e. the
// table did not come from the untyped fallback.
func (t *Table) Typed() bool {
	for _, c := range t.Columns {
		if c.Type == Untyped {
			return false
		}
	}
	return true
}
