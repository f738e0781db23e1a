package golang

import (
	"github.com/dave/jennifer/jen"
	"github.com/koskimas/tlgen/internal/model"
)

const (
	idInterfaceSender = "Sender"
	idMethodSend      = "Send"
	idStructClient    = "Client"
	idFuncNewClient   = "NewClient"
	idPropSender      = "sender"
	idParamsSuffix    = "Params"

	idParamCtx     = "ctx"
	idParamRequest = "request"
	idParamParams  = "params"
	idParamSender  = "sender"
	idRecvClient   = "c"
	idVarData      = "data"
	idVarOut       = "out"
)

// Client renders the Go rendition of the client module as package pkgPath.
// Result and parameter types reference typesPkg.
func Client(s *model.Schema, typesPkg string, pkgPath string) *jen.File {
	f := jen.NewFilePath(pkgPath)
	f.HeaderComment(GeneratedComment)
	m := newTypeMapper(s, typesPkg)

	genSenderInterface(f)
	genClientStruct(f)
	genNewClientFunc(f)

	for _, e := range s.FunctionEntries() {
		if len(e.Fields) > 0 {
			genParamsStruct(f, m, e)
			genMarshal(f, paramsName(e), e.UnmodifiedName, false)
		}
		genMethod(f, m, e)
	}

	f.Comment(GeneratedComment)

	return f
}

func genSenderInterface(f *jen.File) {
	f.Comment(idInterfaceSender + ` delivers a request, which marshals to a JSON object carrying its "` + typeKey + `"`)
	f.Comment("discriminant, and returns the raw JSON response.")
	f.Type().Id(idInterfaceSender).Interface(
		jen.Id(idMethodSend).Params(
			jen.Id(idParamCtx).Qual("context", "Context"),
			jen.Id(idParamRequest).Any(),
		).Params(jsonQual("RawMessage"), jen.Error()),
	)
	f.Line()
}

func genClientStruct(f *jen.File) {
	f.Type().Id(idStructClient).Struct(
		jen.Id(idPropSender).Id(idInterfaceSender),
	)
	f.Line()
}

func genNewClientFunc(f *jen.File) {
	f.Func().Id(idFuncNewClient).Params(
		jen.Id(idParamSender).Id(idInterfaceSender),
	).Op("*").Id(idStructClient).Block(
		jen.Return(
			jen.Op("&").Id(idStructClient).Values(jen.Dict{
				jen.Id(idPropSender): jen.Id(idParamSender),
			}),
		),
	)
	f.Line()
}

func genParamsStruct(f *jen.File, m typeMapper, e *model.Entry) {
	f.Type().Id(paramsName(e)).StructFunc(func(g *jen.Group) {
		for _, field := range e.Fields {
			g.Add(m.field(field))
		}
	})
	f.Line()
}

func genMethod(f *jen.File, m typeMapper, e *model.Entry) {
	f.Func().Params(
		jen.Id(idRecvClient).Op("*").Id(idStructClient),
	).Id(e.Name).ParamsFunc(func(g *jen.Group) {
		g.Id(idParamCtx).Qual("context", "Context")

		if len(e.Fields) > 0 {
			g.Id(idParamParams).Id(paramsName(e))
		}
	}).Params(
		m.named(e.Result()),
		jen.Error(),
	).BlockFunc(func(g *jen.Group) {
		request := jen.Id(idParamParams)
		if len(e.Fields) == 0 {
			request = jen.Map(jen.String()).Any().Values(jen.Dict{
				jen.Lit(typeKey): jen.Lit(e.UnmodifiedName),
			})
		}

		g.List(jen.Id(idVarData), jen.Err()).Op(":=").Id(idRecvClient).Dot(idPropSender).Dot(idMethodSend).Call(
			jen.Id(idParamCtx),
			request,
		)
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		)
		g.Line()
		g.List(jen.Id(idVarClass), jen.Err()).Op(":=").Qual(m.pkg, idFuncDecodeClass).Call(jen.Id(idVarData))
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		)
		g.List(jen.Id(idVarOut), jen.Id("ok")).Op(":=").Id(idVarClass).Assert(m.named(e.Result()))
		g.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
				jen.Lit(e.UnmodifiedName+": unexpected result %T"),
				jen.Id(idVarClass),
			)),
		)
		g.Return(jen.Id(idVarOut), jen.Nil())
	})
	f.Line()
}

func paramsName(e *model.Entry) string {
	return e.Name + idParamsSuffix
}
