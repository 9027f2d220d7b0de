package query

import "strings"

type MatchMode int

const (
	// Containing matches case-insensitively anywhere inside the stored value.
	Containing MatchMode = iota
	// Exact matches the whole stored value.
	Exact
)

// Field is a single constraint of an Example, addressed by column name.
type Field struct {
	Column string
	Value  string
	Mode   MatchMode
}

func Contains(column, value string) Field {
	return Field{Column: column, Value: value, Mode: Containing}
}

func Equals(column, value string) Field {
	return Field{Column: column, Value: value, Mode: Exact}
}

// Example is a partial-match filter: only fields carrying a value constrain the result.
type Example struct {
	fields []Field
}

/* Builds an Example dropping every field left empty, so unset fields act as wildcards. */
func NewExample(fields ...Field) Example {
	set := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		set = append(set, f)
	}
	return Example{fields: set}
}

func (e Example) Fields() []Field {
	return e.fields
}

func (e Example) IsEmpty() bool {
	return len(e.fields) == 0
}

/* Reports whether a record satisfies every field of the example. valueOf returns the record's value for a column. */
func (e Example) Matches(valueOf func(column string) string) bool {
	for _, f := range e.fields {
		got := valueOf(f.Column)
		switch f.Mode {
		case Exact:
			if got != f.Value {
				return false
			}
		default:
			if !strings.Contains(strings.ToLower(got), strings.ToLower(f.Value)) {
				return false
			}
		}
	}
	return true
}
