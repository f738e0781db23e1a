package typescript

import (
	"fmt"

	"github.com/koskimas/tlgen/internal/model"
)

const (
	GeneratedMarker = "// This was generated. Do not edit."
	baseClass       = "Class"
	typeProperty    = `"@type"`
)

var fileDirectives = []string{
	"// deno-lint-ignore-file",
	"// deno-fmt-ignore-file",
}

// Classes renders the type hierarchy module: the universal base class, one
// abstract class per class marker and one class per type declaration.
func Classes(s *model.Schema) string {
	b := &stringBuilder{}

	writeFileHeader(b)

	b.WriteLine(fmt.Sprintf("export class %s {", baseClass))
	b.WriteLine("}")

	for _, d := range s.Types {
		writeDeclaration(b, d)
	}

	// Class markers found after the sentinel still belong to this module.
	for _, d := range s.Functions {
		for _, c := range d.Classes {
			writeAbstractClass(b, c)
		}
	}

	writeFileFooter(b)

	return b.String()
}

func writeFileHeader(b *stringBuilder) {
	b.WriteLine(GeneratedMarker)
	for _, d := range fileDirectives {
		b.WriteLine(d)
	}
	b.WriteLine("")
}

func writeFileFooter(b *stringBuilder) {
	b.WriteLine("")
	b.WriteLine(GeneratedMarker)
}

func writeDeclaration(b *stringBuilder, d model.Declaration) {
	for _, c := range d.Classes {
		writeAbstractClass(b, c)
	}

	if d.Entry != nil {
		writeClass(b, d.Entry)
	}
}

func writeAbstractClass(b *stringBuilder, c model.ClassMarker) {
	b.WriteLine("")
	b.WriteLine("/**")
	b.WriteLine(" * " + c.Description)
	b.WriteLine(" */")
	b.WriteLine(fmt.Sprintf("export class %s extends %s {", c.Name, baseClass))
	b.WriteLine("}")
}

func writeClass(b *stringBuilder, e *model.Entry) {
	parent := e.Parent
	if parent == "" {
		parent = baseClass
	}

	b.WriteLine("")
	b.WriteLine(fmt.Sprintf("export class %s extends %s {", e.Name, parent))
	b.Indent()

	b.WriteLine(fmt.Sprintf(`%s = "%s";`, typeProperty, e.UnmodifiedName))
	for _, f := range e.Fields {
		b.WriteLine(fieldMember(f, "") + ";")
	}
	b.WriteLine("")

	writeConstructor(b, e)

	b.DeIndent()
	b.WriteLine("}")
}

func writeConstructor(b *stringBuilder, e *model.Entry) {
	if len(e.Fields) == 0 {
		b.WriteLine("constructor() {")
	} else {
		b.WriteLine(fmt.Sprintf("constructor(params: { %s }) {", fieldList(e.Fields, "", ", ")))
	}

	b.Indent()
	b.WriteLine("super();")
	for _, f := range e.Fields {
		b.WriteLine(fmt.Sprintf("this.%s = params.%s;", f.Name, f.Name))
	}
	b.DeIndent()

	b.WriteLine("}")
}
