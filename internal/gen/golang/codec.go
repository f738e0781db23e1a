package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/tlgen/internal/model"
)

const (
	typeKey = "@type"

	idVarConstructors = "classConstructors"
	idFuncNewClass    = "NewClass"
	idFuncDecodeClass = "DecodeClass"
	idDecodePrefix    = "decode"

	idTypeAlias  = "alias"
	idRecvStruct = "x"
	idParamData  = "data"
	idParamType  = "tlType"
	idVarRaw     = "raw"
	idVarHead    = "head"
	idVarClass   = "class"
	idVarValue   = "v"
	idFieldType  = "Type"
)

func jsonQual(name string) *jen.Statement {
	return jen.Qual("encoding/json", name)
}

// genRegistry renders the "@type" -> constructor map together with NewClass
// and DecodeClass.
func genRegistry(f *jen.File, entries []*model.Entry) {
	f.Var().Id(idVarConstructors).Op("=").Map(jen.String()).Func().Params().Id(idInterfaceClass).Values(
		jen.DictFunc(func(d jen.Dict) {
			for _, e := range entries {
				d[jen.Lit(e.UnmodifiedName)] = jen.Func().Params().Id(idInterfaceClass).Block(
					jen.Return(jen.Op("&").Id(e.Name).Values()),
				)
			}
		}),
	)
	f.Line()

	f.Comment(idFuncNewClass + " returns an empty value of the type whose discriminant is " + idParamType + ".")
	f.Func().Id(idFuncNewClass).Params(jen.Id(idParamType).String()).Params(jen.Id(idInterfaceClass), jen.Bool()).Block(
		jen.List(jen.Id("fn"), jen.Id("ok")).Op(":=").Id(idVarConstructors).Index(jen.Id(idParamType)),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.False()),
		),
		jen.Return(jen.Id("fn").Call(), jen.True()),
	)
	f.Line()

	f.Comment(idFuncDecodeClass + ` decodes a JSON object into the type named by its "` + typeKey + `" key.`)
	f.Comment("A JSON null decodes to nil.")
	f.Func().Id(idFuncDecodeClass).Params(jen.Id(idParamData).Index().Byte()).Params(jen.Id(idInterfaceClass), jen.Error()).Block(
		jen.If(jen.Len(jen.Id(idParamData)).Op("==").Lit(0).Op("||").String().Call(jen.Id(idParamData)).Op("==").Lit("null")).Block(
			jen.Return(jen.Nil(), jen.Nil()),
		),
		jen.Line(),
		jen.Var().Id(idVarHead).Struct(
			jen.Id(idFieldType).String().Tag(map[string]string{"json": typeKey}),
		),
		jen.If(
			jen.Err().Op(":=").Add(jsonQual("Unmarshal")).Call(jen.Id(idParamData), jen.Op("&").Id(idVarHead)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Line(),
		jen.List(jen.Id(idVarClass), jen.Id("ok")).Op(":=").Id(idFuncNewClass).Call(jen.Id(idVarHead).Dot(idFieldType)),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown type %q"), jen.Id(idVarHead).Dot(idFieldType))),
		),
		jen.If(
			jen.Err().Op(":=").Add(jsonQual("Unmarshal")).Call(jen.Id(idParamData), jen.Id(idVarClass)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Id(idVarClass), jen.Nil()),
	)
	f.Line()
}

// genInterfaceDecoder renders decode<Name>, which decodes JSON into the
// interface of a class marker.
func genInterfaceDecoder(f *jen.File, c model.ClassMarker) {
	f.Func().Id(decoderName(c.Name)).Params(jen.Id(idParamData).Add(jsonQual("RawMessage"))).Params(jen.Id(c.Name), jen.Error()).Block(
		jen.List(jen.Id(idVarClass), jen.Err()).Op(":=").Id(idFuncDecodeClass).Call(jen.Id(idParamData)),
		jen.If(jen.Err().Op("!=").Nil().Op("||").Id(idVarClass).Op("==").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.List(jen.Id(idVarValue), jen.Id("ok")).Op(":=").Id(idVarClass).Assert(jen.Id(c.Name)),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
				jen.Lit("%q does not implement "+c.Name),
				jen.Id(idVarClass).Dot(idMethodType).Call(),
			)),
		),
		jen.Return(jen.Id(idVarValue), jen.Nil()),
	)
	f.Line()
}

func decoderName(class string) string {
	return idDecodePrefix + class
}

// genMarshal renders a MarshalJSON that adds the "@type" key. Value receivers
// are used for request params, which are passed by value.
func genMarshal(f *jen.File, name string, tlType string, pointer bool) {
	recv := jen.Id(idRecvStruct).Id(name)
	embedded := jen.Id(idTypeAlias)
	value := jen.Id(idTypeAlias).Call(jen.Id(idRecvStruct))

	if pointer {
		recv = jen.Id(idRecvStruct).Op("*").Id(name)
		embedded = jen.Op("*").Id(idTypeAlias)
		value = jen.Parens(jen.Op("*").Id(idTypeAlias)).Call(jen.Id(idRecvStruct))
	}

	f.Func().Params(recv).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Type().Id(idTypeAlias).Id(name),
		jen.Return(jsonQual("Marshal").Call(
			jen.Struct(
				jen.Id(idFieldType).String().Tag(map[string]string{"json": typeKey}),
				embedded,
			).Values(jen.Dict{
				jen.Id(idFieldType): jen.Lit(tlType),
				jen.Id(idTypeAlias): value,
			}),
		)),
	)
	f.Line()
}

func (m typeMapper) hasInterface(t *model.Type) bool {
	switch t.Kind {
	case model.KindRef:
		return m.abstract[t.Name]
	case model.KindArray:
		return m.hasInterface(t.Items)
	}

	return false
}

// rawType mirrors t with every interface replaced by json.RawMessage.
func rawType(t *model.Type) *jen.Statement {
	if t.Kind == model.KindArray {
		return jen.Index().Add(rawType(t.Items))
	}

	return jsonQual("RawMessage")
}

// genUnmarshal renders an UnmarshalJSON for structs with interface typed
// fields. Those fields are decoded as raw JSON first and then dispatched on
// their "@type".
func genUnmarshal(f *jen.File, m typeMapper, e *model.Entry) {
	fields := make([]model.Field, 0)
	for _, field := range e.Fields {
		if m.hasInterface(field.Type) {
			fields = append(fields, field)
		}
	}

	if len(fields) == 0 {
		return
	}

	f.Func().Params(jen.Id(idRecvStruct).Op("*").Id(e.Name)).Id("UnmarshalJSON").Params(
		jen.Id(idParamData).Index().Byte(),
	).Error().BlockFunc(func(g *jen.Group) {
		g.Type().Id(idTypeAlias).Id(e.Name)
		g.Var().Id(idVarRaw).StructFunc(func(g *jen.Group) {
			g.Op("*").Id(idTypeAlias)
			for _, field := range fields {
				g.Id(fieldName(field.Name)).Add(rawType(field.Type)).Tag(map[string]string{"json": field.Name})
			}
		})
		g.Id(idVarRaw).Dot(idTypeAlias).Op("=").Parens(jen.Op("*").Id(idTypeAlias)).Call(jen.Id(idRecvStruct))
		g.If(
			jen.Err().Op(":=").Add(jsonQual("Unmarshal")).Call(jen.Id(idParamData), jen.Op("&").Id(idVarRaw)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Err()),
		)

		for _, field := range fields {
			name := fieldName(field.Name)
			genDecodeValue(g, m,
				func() *jen.Statement { return jen.Id(idRecvStruct).Dot(name) },
				func() *jen.Statement { return jen.Id(idVarRaw).Dot(name) },
				field.Type, 0,
			)
		}

		g.Return(jen.Nil())
	})
	f.Line()
}

// genDecodeValue decodes src into target, walking into nested arrays.
func genDecodeValue(g *jen.Group, m typeMapper, target func() *jen.Statement, src func() *jen.Statement, t *model.Type, depth int) {
	if t.Kind == model.KindRef {
		g.If(
			jen.List(jen.Id(idVarValue), jen.Err()).Op(":=").Id(decoderName(t.Name)).Call(src()),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Err()),
		).Else().Block(
			target().Op("=").Id(idVarValue),
		)
		return
	}

	index := fmt.Sprintf("i%d", depth)
	elem := fmt.Sprintf("v%d", depth)

	g.If(src().Op("!=").Nil()).BlockFunc(func(g *jen.Group) {
		g.Add(target().Op("=").Make(m.code(t), jen.Len(src())))
		g.For(jen.List(jen.Id(index), jen.Id(elem)).Op(":=").Range().Add(src())).BlockFunc(func(g *jen.Group) {
			genDecodeValue(g, m,
				func() *jen.Statement { return target().Index(jen.Id(index)) },
				func() *jen.Statement { return jen.Id(elem) },
				t.Items, depth+1,
			)
		})
	})
}
