package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/ONSdigital/dp-qri-client/model"
)

// errCell marks a failure to coerce a cell or row to the declared schema.
// Those failures send Materialize down the untyped path.
var errCell = errors.New("cell does not match schema")

// Materialize parses raw csv text into a table with the given columns.
// When headerRow is set the first record is skipped; the schema names win
// over whatever the header says.
//
// A strict pass coerces every cell to its declared type. If any cell or row
// fails to fit, raw is parsed again from the start with the declared names
// only and every column left untyped.
func Materialize(raw string, columns []model.Column, headerRow bool) (*Table, error) {
	if len(columns) == 0 {
		return nil, clienterror.New(clienterror.Configuration, "schema has no columns")
	}

	types := make([]Type, len(columns))
	for i, c := range columns {
		t, err := TypeOf(c.Type)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}

	table, err := parse(strings.NewReader(raw), columns, types, headerRow, true)
	if err == nil {
		return table, nil
	}

	untyped := make([]Type, len(columns))
	table, ferr := parse(strings.NewReader(raw), columns, untyped, headerRow, false)
	if ferr != nil {
		return nil, fmt.Errorf("parsing body: %w", ferr)
	}
	return table, nil
}

func parse(r io.Reader, columns []model.Column, types []Type, headerRow, strict bool) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	table := &Table{Columns: make([]Column, len(columns))}
	for i, c := range columns {
		table.Columns[i] = Column{Name: c.Title, Type: types[i], Values: []interface{}{}}
	}

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if strict {
				return nil, fmt.Errorf("%w: %v", errCell, err)
			}
			return nil, err
		}
		if first && headerRow {
			first = false
			continue
		}
		first = false

		if strict && len(record) != len(columns) {
			return nil, fmt.Errorf("%w: row has %d fields, schema has %d columns", errCell, len(record), len(columns))
		}

		for i := range table.Columns {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			v, err := convert(cell, types[i])
			if err != nil {
				return nil, fmt.Errorf("%w: column %q: %v", errCell, columns[i].Title, err)
			}
			table.Columns[i].Values = append(table.Columns[i].Values, v)
		}
	}
	return table, nil
}

func convert(cell string, t Type) (interface{}, error) {
	switch t {
	case Integer:
		if cell == "" {
			return nil, nil
		}
		return strconv.ParseInt(cell, 10, 64)
	case Number:
		if cell == "" {
			return nil, nil
		}
		return strconv.ParseFloat(cell, 64)
	case Bool:
		if cell == "" {
			return nil, nil
		}
		return strconv.ParseBool(strings.ToLower(cell))
	default:
		return cell, nil
	}
}

// FromRecords builds a table from decoded json records such as the result
// of a sql query. Columns are sorted by name and typed from the first
// non-nil value; columns whose values disagree are left untyped.
func FromRecords(records []map[string]interface{}) *Table {
	seen := map[string]bool{}
	var names []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	table := &Table{Columns: make([]Column, len(names))}
	for i, name := range names {
		col := Column{Name: name, Type: Untyped, Values: make([]interface{}, 0, len(records))}
		for _, rec := range records {
			col.Values = append(col.Values, rec[name])
		}
		col.Type = inferType(col.Values)
		table.Columns[i] = col
	}
	return table
}

func inferType(values []interface{}) Type {
	t := Untyped
	for _, v := range values {
		var vt Type
		switch v.(type) {
		case nil:
			continue
		case float64:
			vt = Number
		case string:
			vt = String
		case bool:
			vt = Bool
		default:
			return Untyped
		}
		if t == Untyped {
			t = vt
		} else if t != vt {
			return Untyped
		}
	}
	return t
}
