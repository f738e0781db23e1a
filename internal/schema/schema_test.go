package schema

import (
	"strings"
	"testing"

	"github.com/koskimas/tlgen/internal/model"
	assert "github.com/stretchr/testify/require"
)

const header = `// header 1
// header 2
// header 3
// header 4
// header 5
// header 6
// header 7
// header 8
// header 9
`

func lines(texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = Line{Number: i + 1, Text: t}
	}
	return out
}

func TestSplitLines(t *testing.T) {
	text := "a\n\nb\r\n   \nc;\n"

	assert.Equal(t, []Line{
		{Number: 1, Text: "a"},
		{Number: 3, Text: "b"},
		{Number: 5, Text: "c;"},
	}, splitLines(text, 0))

	assert.Equal(t, []Line{{Number: 5, Text: "c;"}}, splitLines(text, 2))
	assert.Empty(t, splitLines(text, 3))
	assert.Empty(t, splitLines(text, 10))
}

func TestSplitSections(t *testing.T) {
	types, functions := splitSections(lines("a;", "---functions---", "b;"), DefaultSentinel)
	assert.Equal(t, []Line{{Number: 1, Text: "a;"}}, types)
	assert.Equal(t, []Line{{Number: 3, Text: "b;"}}, functions)

	types, functions = splitSections(lines("a;", "b;"), DefaultSentinel)
	assert.Len(t, types, 2)
	assert.Empty(t, functions)
}

func TestGroupBlocks(t *testing.T) {
	blocks := groupBlocks(lines(
		"//@description first",
		"//@a text",
		"first a:int32 = First;",
		"second = Second;",
		"//@description dangling",
	))

	assert.Len(t, blocks, 3)
	assert.Len(t, blocks[0].Lines, 3)
	assert.Len(t, blocks[1].Lines, 1)
	assert.Len(t, blocks[2].Lines, 1)

	_, ok := blocks[2].Declaration()
	assert.False(t, ok)
}

func TestGroupBlocksCommentEndingWithSemicolon(t *testing.T) {
	blocks := groupBlocks(lines(
		"//@description ends with;",
		"first = First;",
	))

	assert.Len(t, blocks, 1)
}

func TestBlockDeclarationSpanningLines(t *testing.T) {
	b := Block{Lines: lines(
		"//@description multi",
		"multi a:int32",
		"  b:string = Multi;",
	)}

	decl, ok := b.Declaration()
	assert.True(t, ok)
	assert.Equal(t, Line{Number: 2, Text: "multi a:int32 b:string = Multi;"}, decl)
}

func TestNullableFields(t *testing.T) {
	nullable := NullableFields(lines(
		"//@description Describes a thing @hidden this may be null but description lines are ignored",
		"//@photo Profile photo; may be null @name Name of the thing",
		"//@reply_to Message to reply to; pass null if none",
		"//@other May Be Null",
		"//@class Thing @description may be null",
		"//-continued text may be null",
	))

	assert.Equal(t, map[string]bool{
		"photo":    true,
		"reply_to": true,
	}, nullable)
}

func TestParseClassMarker(t *testing.T) {
	m, ok := parseClassMarker(Line{Number: 4, Text: "//@class Update @description base for updates"})
	assert.True(t, ok)
	assert.Equal(t, model.ClassMarker{Name: "Update", Description: "base for updates", Line: 4}, m)

	m, ok = parseClassMarker(Line{Text: "//@class Bare"})
	assert.True(t, ok)
	assert.Equal(t, "Bare", m.Name)
	assert.Empty(t, m.Description)

	_, ok = parseClassMarker(Line{Text: "//@description not a class"})
	assert.False(t, ok)
}

func TestParseEntry(t *testing.T) {
	entry, err := parseEntry(Line{Number: 7, Text: "updateThing b:int32 a:string c:vector<thing> = Update;"}, map[string]bool{"c": true})
	assert.NoError(t, err)

	assert.Equal(t, "UpdateThing", entry.Name)
	assert.Equal(t, "updateThing", entry.UnmodifiedName)
	assert.Equal(t, "Update", entry.Parent)
	assert.Equal(t, 7, entry.Line)

	names := make([]string, 0)
	for _, f := range entry.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	assert.Equal(t, model.KindText, entry.Fields[0].Type.Kind)
	assert.Equal(t, model.KindNumber, entry.Fields[1].Type.Kind)
	assert.Equal(t, "vector<thing>", entry.Fields[2].SchemaType)
	assert.Equal(t, model.KindArray, entry.Fields[2].Type.Kind)
	assert.Equal(t, "Thing", entry.Fields[2].Type.Items.Name)
	assert.False(t, entry.Fields[0].Nullable)
	assert.True(t, entry.Fields[2].Nullable)
}

func TestParseEntrySameNameHasNoParent(t *testing.T) {
	entry, err := parseEntry(Line{Text: "testInt int_value:int32 = TestInt;"}, nil)
	assert.NoError(t, err)
	assert.Empty(t, entry.Parent)
	assert.Equal(t, "TestInt", entry.Result())
}

func TestParseEntryWithoutFields(t *testing.T) {
	entry, err := parseEntry(Line{Text: "getTest = TestInt;"}, nil)
	assert.NoError(t, err)
	assert.Empty(t, entry.Fields)
	assert.Equal(t, "TestInt", entry.Parent)
}

func TestParseEntryErrors(t *testing.T) {
	tests := []struct {
		text    string
		message string
	}{
		{"lonely;", "declaration needs a name and a result type"},
		{"broken value = Broken;", `invalid field "value"`},
		{"broken :int32 = Broken;", `invalid field ":int32"`},
		{"broken = ;", "missing result type"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			_, err := parseEntry(Line{Number: 3, Text: test.text}, nil)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.Equal(t, 3, parseErr.Line)
			assert.Equal(t, test.message, parseErr.Message)
		})
	}
}

func TestParse(t *testing.T) {
	text := header + `
//@class Update @description base for updates

//@description An update @chat_id Chat
//@photo New photo; may be null
updateChatPhoto photo:chatPhoto chat_id:int53 = Update;

testInt int_value:int32 = TestInt;

---functions---

//@description Returns a test value
getTest = TestInt;

//@description Sets a photo @chat_id Chat
//@photo Photo; pass null to remove
setChatPhoto chat_id:int53 photo:inputChatPhoto = Ok;
`

	s, err := Parse(text, DefaultOptions())
	assert.NoError(t, err)

	assert.Equal(t, []model.ClassMarker{{Name: "Update", Description: "base for updates", Line: 11}}, s.Classes())

	types := s.TypeEntries()
	assert.Len(t, types, 2)
	assert.Equal(t, "updateChatPhoto", types[0].UnmodifiedName)
	assert.Equal(t, "Update", types[0].Parent)
	assert.Equal(t, "chat_id", types[0].Fields[0].Name)
	assert.False(t, types[0].Fields[0].Nullable)
	assert.Equal(t, "photo", types[0].Fields[1].Name)
	assert.True(t, types[0].Fields[1].Nullable)
	assert.Equal(t, "testInt", types[1].UnmodifiedName)

	functions := s.FunctionEntries()
	assert.Len(t, functions, 2)
	assert.Equal(t, "getTest", functions[0].UnmodifiedName)
	assert.Equal(t, "TestInt", functions[0].Result())
	assert.Empty(t, functions[0].Fields)
	assert.Equal(t, "setChatPhoto", functions[1].UnmodifiedName)
	assert.False(t, functions[1].Fields[0].Nullable)
	assert.True(t, functions[1].Fields[1].Nullable)
}

func TestParseToleratesTrailingComments(t *testing.T) {
	s, err := Parse("ok = Ok;\n---functions---\nget = Ok;\n//@description trailing\n", Options{Sentinel: DefaultSentinel})
	assert.NoError(t, err)
	assert.Len(t, s.TypeEntries(), 1)
	assert.Len(t, s.FunctionEntries(), 1)
	assert.Len(t, s.Functions, 2)
}

func TestParseReportsLineNumbers(t *testing.T) {
	_, err := Parse("ok = Ok;\n\nbad field = Bad;\n", Options{Sentinel: DefaultSentinel})

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "type section: line 3"))
}

func TestParseUnterminatedDeclaration(t *testing.T) {
	_, err := Parse("ok = Ok;\nbroken a:int32\n", Options{Sentinel: DefaultSentinel})
	assert.ErrorContains(t, err, "unterminated declaration")
}
