package typescript

import (
	"fmt"
	"strings"

	"github.com/koskimas/tlgen/internal/model"
)

// TypeExpr renders t as a TypeScript type. References are prefixed with
// qualifier, e.g. "classes.".
func TypeExpr(t *model.Type, qualifier string) string {
	switch t.Kind {
	case model.KindNumber:
		return "number"
	case model.KindText:
		return "string"
	case model.KindBoolean:
		return "boolean"
	case model.KindArray:
		return TypeExpr(t.Items, qualifier) + "[]"
	}

	return qualifier + t.Name
}

// ResolveType resolves a schema type expression straight to TypeScript.
func ResolveType(schemaType string, qualifier string) string {
	return TypeExpr(model.Resolve(schemaType), qualifier)
}

// fieldList renders `a: number, b?: string` style members joined by sep.
func fieldList(fields []model.Field, qualifier string, sep string) string {
	members := make([]string, len(fields))

	for i, f := range fields {
		members[i] = fieldMember(f, qualifier)
	}

	return strings.Join(members, sep)
}

func fieldMember(f model.Field, qualifier string) string {
	name := f.Name
	if f.Nullable {
		name += "?"
	}

	return fmt.Sprintf("%s: %s", name, TypeExpr(f.Type, qualifier))
}
