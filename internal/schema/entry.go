package schema

import (
	"sort"
	"strings"

	"github.com/koskimas/tlgen/internal/model"
)

const (
	tokenAssign    = "="
	fieldSeparator = ":"
)

// parseEntry parses a declaration like `testInt value:int32 = TestInt;`.
func parseEntry(l Line, nullable map[string]bool) (*model.Entry, error) {
	tokens := make([]string, 0)
	for _, t := range strings.Fields(l.Text) {
		if t != tokenAssign {
			tokens = append(tokens, t)
		}
	}

	if len(tokens) < 2 {
		return nil, parseErrorf(l, "declaration needs a name and a result type")
	}

	right := strings.TrimSuffix(tokens[len(tokens)-1], ";")
	if right == "" {
		return nil, parseErrorf(l, "missing result type")
	}

	entry := &model.Entry{
		Name:           model.FirstUpper(tokens[0]),
		UnmodifiedName: tokens[0],
		Fields:         make([]model.Field, 0, len(tokens)-2),
		Line:           l.Number,
	}

	if right != entry.Name {
		entry.Parent = right
	}

	for _, t := range tokens[1 : len(tokens)-1] {
		name, schemaType, found := strings.Cut(t, fieldSeparator)
		if !found || name == "" || schemaType == "" {
			return nil, parseErrorf(l, `invalid field "%s"`, t)
		}

		entry.Fields = append(entry.Fields, model.Field{
			Name:       name,
			SchemaType: schemaType,
			Type:       model.Resolve(schemaType),
			Nullable:   nullable[name],
		})
	}

	sort.SliceStable(entry.Fields, func(i, j int) bool {
		return entry.Fields[i].Name < entry.Fields[j].Name
	})

	return entry, nil
}
