package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

type FieldType int

const (
	TypeID FieldType = iota
	TypeString
	TypeNumber
	TypeDate
)

type Field struct {
	Column string
	Type   FieldType
}

// FieldTable declares, per entity, which fields a caller may filter or sort
// by and how their raw string values are coerced.
type FieldTable map[string]Field

func (t FieldTable) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// SortColumn resolves a caller-supplied sort field to a column, falling back
// to created_at for unknown or empty names.
func (t FieldTable) SortColumn(name string) string {
	if f, ok := t[name]; ok {
		return f.Column
	}
	return "created_at"
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// Condition builds the where clause for one field/value pair:
// identifier fields with a syntactically valid id match exactly, string
// fields match a case-insensitive substring, numeric and date fields coerce
// the value, anything else falls back to raw equality.
func (t FieldTable) Condition(kind, field, value string) (Cond, error) {
	f, ok := t[field]
	if !ok {
		return Cond{}, apierr.InvalidQueryFilters(kind)
	}
	switch {
	case f.Type == TypeID && IsValidID(value):
		return Cond{Query: f.Column + " = ?", Args: []any{value}}, nil
	case f.Type == TypeString:
		return Cond{Query: "LOWER(" + f.Column + ") LIKE ?", Args: []any{"%" + strings.ToLower(value) + "%"}}, nil
	case f.Type == TypeNumber:
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return Cond{Query: f.Column + " = ?", Args: []any{n}}, nil
		}
	case f.Type == TypeDate:
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, value); err == nil {
				return Cond{Query: f.Column + " = ?", Args: []any{d}}, nil
			}
		}
	}
	return Cond{Query: f.Column + " = ?", Args: []any{value}}, nil
}

// IsValidID reports whether the value parses as a record identifier.
func IsValidID(v string) bool {
	_, err := ulid.ParseStrict(v)
	return err == nil
}
