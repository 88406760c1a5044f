package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Form errors 📝
	ErrUnknownField = errors.New("❌ unknown field")
	ErrNoGroup      = errors.New("❌ unknown row group")
	ErrRowIndex     = errors.New("❌ row index out of range")
)

// Kind selects how a field's text is coerced when the section is collected.
type Kind int

const (
	KindText Kind = iota
	KindFloat
	KindInt
	KindBool
	KindDirection
	KindScale
	KindLines
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFloat:
		return "number"
	case KindInt:
		return "integer"
	case KindBool:
		return "true/false"
	case KindDirection:
		return "1 or -1"
	case KindScale:
		return "JSON object"
	case KindLines:
		return "lines"
	case KindPoints:
		return "comma separated numbers"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one text input. Value always holds the raw text the user typed; it is only
// coerced on Collect.
type Field struct {
	Key   string
	Label string
	Kind  Kind
	Value string

	// Shorthand lets a scale field accept "normal,hard,realistic".
	Shorthand bool
}

// Row is one item of a repeatable group, such as a single landmark.
type Row struct {
	Fields []*Field
}

func (r *Row) Field(key string) *Field {
	for _, f := range r.Fields {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// Group is a list of rows sharing one layout.
type Group struct {
	Key   string
	Label string
	Rows  []*Row

	newRow func() *Row
}

// Add appends a row holding the per-row defaults and returns it.
func (g *Group) Add() *Row {
	row := g.newRow()
	g.Rows = append(g.Rows, row)
	return row
}

// Remove deletes the row at index i.
func (g *Group) Remove(i int) error {
	if i < 0 || i >= len(g.Rows) {
		return fmt.Errorf("%w: %s has %d rows, got %d", ErrRowIndex, g.Key, len(g.Rows), i)
	}
	g.Rows = append(g.Rows[:i], g.Rows[i+1:]...)
	return nil
}

func (g *Group) reset(rows []*Row) {
	g.Rows = rows
}

// Form is the set of inputs an editor exposes.
type Form struct {
	Fields []*Field
	Groups []*Group
}

func (f *Form) Field(key string) *Field {
	for _, field := range f.Fields {
		if field.Key == key {
			return field
		}
	}
	return nil
}

func (f *Form) Group(key string) *Group {
	for _, g := range f.Groups {
		if g.Key == key {
			return g
		}
	}
	return nil
}

// Lookup resolves a field path. Plain fields are addressed by key ("radius",
// "GRADIENT.positionZ"); row fields by group, row index and key ("flatZones.0.height").
func (f *Form) Lookup(path string) (*Field, error) {
	if field := f.Field(path); field != nil {
		return field, nil
	}
	parts := strings.SplitN(path, ".", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	g := f.Group(parts[0])
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 0 || i >= len(g.Rows) {
		return nil, fmt.Errorf("%w: %s", ErrRowIndex, path)
	}
	field := g.Rows[i].Field(parts[2])
	if field == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	return field, nil
}

// Set stores raw text into the field at path. Nothing is validated until Collect.
func (f *Form) Set(path, value string) error {
	field, err := f.Lookup(path)
	if err != nil {
		return err
	}
	field.Value = value
	return nil
}

func (f *Form) Get(path string) (string, error) {
	field, err := f.Lookup(path)
	if err != nil {
		return "", err
	}
	return field.Value, nil
}

// Entry is a field together with its path and a display label.
type Entry struct {
	Path  string
	Label string
	Field *Field
}

// Entries flattens the form into display order: plain fields first, then every row.
func (f *Form) Entries() []Entry {
	entries := make([]Entry, 0, len(f.Fields))
	for _, field := range f.Fields {
		entries = append(entries, Entry{Path: field.Key, Label: field.Label, Field: field})
	}
	for _, g := range f.Groups {
		for i, row := range g.Rows {
			for _, field := range row.Fields {
				entries = append(entries, Entry{
					Path:  fmt.Sprintf("%s.%d.%s", g.Key, i, field.Key),
					Label: fmt.Sprintf("%s %d: %s", g.Label, i+1, field.Label),
					Field: field,
				})
			}
		}
	}
	return entries
}
