package model

import (
	"encoding/json"
	"fmt"
)

// Structure describes how a dataset body is encoded.
type Structure struct {
	Checksum     string                 `json:"checksum,omitempty"`
	Depth        int                    `json:"depth,omitempty"`
	Entries      int                    `json:"entries,omitempty"`
	ErrCount     int                    `json:"errCount,omitempty"`
	Format       string                 `json:"format,omitempty"`
	FormatConfig map[string]interface{} `json:"formatConfig,omitempty"`
	Length       int                    `json:"length,omitempty"`
	Schema       *Schema                `json:"schema,omitempty"`
}

// Schema is the json-schema-like description of a tabular body: an array of
// rows, each row an array whose items are the columns, in order.
type Schema struct {
	Type  string       `json:"type,omitempty"`
	Items *SchemaItems `json:"items,omitempty"`
}

// SchemaItems describes a single row.
type SchemaItems struct {
	Type  string   `json:"type,omitempty"`
	Items []Column `json:"items,omitempty"`
}

// Column is one column of a tabular body.
type Column struct {
	Title string     `json:"title"`
	Type  ColumnType `json:"type"`
}

// ColumnType is a primitive type tag. On the wire it may be either a string
// or a list of strings such as ["integer", "null"]; the first tag other than
// "null" is used.
type ColumnType string

// UnmarshalJSON accepts both forms of type tag.
func (t *ColumnType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = ColumnType(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("column type must be a string or a list of strings: %w", err)
	}
	for _, s := range list {
		if s != "null" {
			*t = ColumnType(s)
			return nil
		}
	}
	*t = ""
	return nil
}

// Columns returns the ordered columns of the schema, or nil when the
// structure has no tabular schema.
func (s *Structure) Columns() []Column {
	if s == nil || s.Schema == nil || s.Schema.Items == nil {
		return nil
	}
	return s.Schema.Items.Items
}

// HeaderRow reports whether the first row of the body holds column names.
func (s *Structure) HeaderRow() bool {
	if s == nil || s.FormatConfig == nil {
		return false
	}
	v, ok := s.FormatConfig["headerRow"].(bool)
	return ok && v
}
