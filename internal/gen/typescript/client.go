package typescript

import (
	"fmt"

	"github.com/koskimas/tlgen/internal/model"
)

const (
	DefaultBaseClientImport = "./base_client.ts"
	DefaultClassesImport    = "./classes.ts"

	classesNamespace = "classes"
)

type ClientOptions struct {
	// BaseClientImport is the module exporting BaseClient.
	BaseClientImport string
	// ClassesImport is the module rendered by Classes.
	ClassesImport string
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		BaseClientImport: DefaultBaseClientImport,
		ClassesImport:    DefaultClassesImport,
	}
}

// Client renders the client module with one method per function declaration.
// Every method delegates to `send`, inherited from BaseClient.
func Client(s *model.Schema, opts ClientOptions) string {
	b := &stringBuilder{}

	writeFileHeader(b)

	b.WriteLine(fmt.Sprintf(`import { BaseClient } from "%s";`, opts.BaseClientImport))
	b.WriteLine(fmt.Sprintf(`import * as %s from "%s";`, classesNamespace, opts.ClassesImport))
	b.WriteLine("")
	b.WriteLine("export class Client extends BaseClient {")
	b.Indent()

	for i, e := range s.FunctionEntries() {
		if i > 0 {
			b.WriteLine("")
		}
		writeMethod(b, e)
	}

	b.DeIndent()
	b.WriteLine("}")

	writeFileFooter(b)

	return b.String()
}

func writeMethod(b *stringBuilder, e *model.Entry) {
	qualifier := classesNamespace + "."
	result := fmt.Sprintf("Promise<%s%s>", qualifier, e.Result())

	if len(e.Fields) == 0 {
		b.WriteLine(fmt.Sprintf("%s(): %s {", e.UnmodifiedName, result))
	} else {
		b.WriteLine(fmt.Sprintf("%s(params: { %s }): %s {", e.UnmodifiedName, fieldList(e.Fields, qualifier, ", "), result))
	}

	b.Indent()
	if len(e.Fields) == 0 {
		b.WriteLine(fmt.Sprintf(`return this.send({ %s: "%s" });`, typeProperty, e.UnmodifiedName))
	} else {
		b.WriteLine(fmt.Sprintf(`return this.send({ %s: "%s", ...params });`, typeProperty, e.UnmodifiedName))
	}
	b.DeIndent()

	b.WriteLine("}")
}
