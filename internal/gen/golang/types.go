package golang

import (
	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"github.com/koskimas/tlgen/internal/model"
)

const (
	GeneratedComment = "Code generated by tlgen. DO NOT EDIT."

	idInterfaceClass = "Class"
	idMethodType     = "TLType"
	idMarkerPrefix   = "is"
)

// typeMapper maps resolved schema types to Go types living in pkg. Class
// markers become interfaces, other named types are referenced by pointer.
type typeMapper struct {
	pkg      string
	abstract map[string]bool
}

func newTypeMapper(s *model.Schema, pkg string) typeMapper {
	abstract := make(map[string]bool)
	for _, c := range s.Classes() {
		abstract[c.Name] = true
	}

	return typeMapper{
		pkg:      pkg,
		abstract: abstract,
	}
}

func (m typeMapper) code(t *model.Type) *jen.Statement {
	switch t.Kind {
	case model.KindNumber:
		switch t.Schema {
		case "double":
			return jen.Float64()
		case "int32":
			return jen.Int32()
		}
		return jen.Int64()
	case model.KindText:
		if t.Schema == "bytes" {
			return jen.Index().Byte()
		}
		return jen.String()
	case model.KindBoolean:
		return jen.Bool()
	case model.KindArray:
		return jen.Index().Add(m.code(t.Items))
	}

	return m.named(t.Name)
}

func (m typeMapper) named(name string) *jen.Statement {
	if m.abstract[name] {
		return jen.Qual(m.pkg, name)
	}

	return jen.Op("*").Qual(m.pkg, name)
}

func (m typeMapper) field(f model.Field) *jen.Statement {
	typ := m.code(f.Type)
	tag := f.Name

	if f.Nullable {
		tag += ",omitempty"

		if isScalar(f.Type) {
			typ = jen.Op("*").Add(typ)
		}
	}

	return jen.Id(fieldName(f.Name)).Add(typ).Tag(map[string]string{"json": tag})
}

func isScalar(t *model.Type) bool {
	return t.Kind == model.KindNumber || t.Kind == model.KindBoolean || (t.Kind == model.KindText && t.Schema != "bytes")
}

func fieldName(name string) string {
	return inflect.Camelize(name)
}

func markerMethod(class string) string {
	return idMarkerPrefix + class
}

// Types renders the Go rendition of the type hierarchy module as package
// pkgPath.
func Types(s *model.Schema, pkgPath string) *jen.File {
	f := jen.NewFilePath(pkgPath)
	f.HeaderComment(GeneratedComment)
	m := newTypeMapper(s, pkgPath)

	f.Comment(idInterfaceClass + ` is implemented by every generated type. ` + idMethodType + ` returns the "@type" discriminant.`)
	f.Type().Id(idInterfaceClass).Interface(
		jen.Id(idMethodType).Params().String(),
	)
	f.Line()

	genRegistry(f, s.TypeEntries())

	for _, c := range s.Classes() {
		genInterface(f, c)
		genInterfaceDecoder(f, c)
	}

	for _, e := range s.TypeEntries() {
		genStruct(f, m, e)
	}

	f.Comment(GeneratedComment)

	return f
}

func genInterface(f *jen.File, c model.ClassMarker) {
	if c.Description != "" {
		f.Comment(c.Description)
	}

	f.Type().Id(c.Name).Interface(
		jen.Id(idInterfaceClass),
		jen.Id(markerMethod(c.Name)).Params(),
	)
	f.Line()
}

func genStruct(f *jen.File, m typeMapper, e *model.Entry) {
	f.Type().Id(e.Name).StructFunc(func(g *jen.Group) {
		for _, field := range e.Fields {
			g.Add(m.field(field))
		}
	})
	f.Line()

	f.Func().Params(jen.Op("*").Id(e.Name)).Id(idMethodType).Params().String().Block(
		jen.Return(jen.Lit(e.UnmodifiedName)),
	)
	f.Line()

	if e.Parent != "" && m.abstract[e.Parent] {
		f.Func().Params(jen.Op("*").Id(e.Name)).Id(markerMethod(e.Parent)).Params().Block()
		f.Line()
	}

	genMarshal(f, e.Name, e.UnmodifiedName, true)
	genUnmarshal(f, m, e)
}
