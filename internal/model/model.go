package model

type Kind string

const (
	KindNumber  Kind = "number"
	KindText    Kind = "text"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindRef     Kind = "ref"
)

// Type is a resolved schema type expression. It carries no target language
// syntax; emitters decide how each kind is spelled.
type Type struct {
	Kind Kind
	// Schema is the schema spelling of a primitive, e.g. "int53" or "bytes".
	Schema string
	// Items is the element type of an array.
	Items *Type
	// Name is the referenced type name with its first letter upper-cased.
	Name string
}

type Field struct {
	Name       string
	SchemaType string
	Type       *Type
	Nullable   bool
}

// Entry is a parsed declaration.
type Entry struct {
	// Name is UnmodifiedName with the first letter upper-cased.
	Name           string
	UnmodifiedName string
	// Parent is the declared result type. Empty when it equals Name.
	Parent string
	// Fields are sorted by name.
	Fields []Field
	Line   int
}

// Result returns the type a function declaration produces.
func (e *Entry) Result() string {
	if e.Parent != "" {
		return e.Parent
	}

	return e.Name
}

// ClassMarker introduces an abstract type that groups declarations.
type ClassMarker struct {
	Name        string
	Description string
	Line        int
}

// Declaration is everything one declaration block produced. Entry is nil for
// a trailing block that only holds comments.
type Declaration struct {
	Classes []ClassMarker
	Entry   *Entry
}

type Schema struct {
	Types     []Declaration
	Functions []Declaration
}

// Classes returns every class marker of the schema in source order.
func (s *Schema) Classes() []ClassMarker {
	classes := make([]ClassMarker, 0)

	for _, d := range s.Types {
		classes = append(classes, d.Classes...)
	}

	for _, d := range s.Functions {
		classes = append(classes, d.Classes...)
	}

	return classes
}

// TypeEntries returns the entries declared before the section sentinel.
func (s *Schema) TypeEntries() []*Entry {
	return entries(s.Types)
}

// FunctionEntries returns the entries declared after the section sentinel.
func (s *Schema) FunctionEntries() []*Entry {
	return entries(s.Functions)
}

func entries(decls []Declaration) []*Entry {
	out := make([]*Entry, 0, len(decls))

	for _, d := range decls {
		if d.Entry != nil {
			out = append(out, d.Entry)
		}
	}

	return out
}
