package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	vectorPrefix = "vector<"
	vectorSuffix = ">"
)

var primitives = map[string]Kind{
	"double": KindNumber,
	"int32":  KindNumber,
	"int53":  KindNumber,
	"int64":  KindNumber,
	"string": KindText,
	"bytes":  KindText,
	"Bool":   KindBoolean,
}

// Resolve maps a schema type expression like `vector<int32>` or `chatPhoto`
// to a Type. Anything that is neither a primitive nor a vector is a reference
// to a generated type.
func Resolve(schemaType string) *Type {
	if kind, ok := primitives[schemaType]; ok {
		return &Type{
			Kind:   kind,
			Schema: schemaType,
		}
	}

	if strings.HasPrefix(schemaType, vectorPrefix) && strings.HasSuffix(schemaType, vectorSuffix) {
		inner := schemaType[len(vectorPrefix) : len(schemaType)-len(vectorSuffix)]

		if inner != "" {
			return &Type{
				Kind:  KindArray,
				Items: Resolve(inner),
			}
		}
	}

	return &Type{
		Kind: KindRef,
		Name: FirstUpper(schemaType),
	}
}

func FirstUpper(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
