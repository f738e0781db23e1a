package typescript

import (
	"strings"
	"testing"

	"github.com/koskimas/tlgen/internal/model"
	assert "github.com/stretchr/testify/require"
)

func field(name string, schemaType string, nullable bool) model.Field {
	return model.Field{
		Name:       name,
		SchemaType: schemaType,
		Type:       model.Resolve(schemaType),
		Nullable:   nullable,
	}
}

func testSchema() *model.Schema {
	return &model.Schema{
		Types: []model.Declaration{
			{
				Classes: []model.ClassMarker{{Name: "Update", Description: "base for updates"}},
				Entry: &model.Entry{
					Name:           "UpdateChatPhoto",
					UnmodifiedName: "updateChatPhoto",
					Parent:         "Update",
					Fields: []model.Field{
						field("chat_id", "int53", false),
						field("photo", "chatPhoto", true),
					},
				},
			},
			{
				Entry: &model.Entry{
					Name:           "TestInt",
					UnmodifiedName: "testInt",
					Fields:         []model.Field{field("int_value", "int32", false)},
				},
			},
			{
				Entry: &model.Entry{Name: "Ok", UnmodifiedName: "ok", Fields: []model.Field{}},
			},
		},
		Functions: []model.Declaration{
			{
				Entry: &model.Entry{
					Name:           "GetTest",
					UnmodifiedName: "getTest",
					Parent:         "TestInt",
					Fields:         []model.Field{},
				},
			},
			{
				Entry: &model.Entry{
					Name:           "SetChatPhoto",
					UnmodifiedName: "setChatPhoto",
					Parent:         "Ok",
					Fields: []model.Field{
						field("chat_id", "int53", false),
						field("photo", "vector<inputChatPhoto>", true),
					},
				},
			},
			{},
		},
	}
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		schemaType string
		qualifier  string
		want       string
	}{
		{"int53", "", "number"},
		{"double", "", "number"},
		{"bytes", "", "string"},
		{"Bool", "", "boolean"},
		{"vector<vector<int32>>", "", "number[][]"},
		{"fooBar", "", "FooBar"},
		{"fooBar", "classes.", "classes.FooBar"},
		{"vector<message>", "classes.", "classes.Message[]"},
	}

	for _, test := range tests {
		t.Run(test.schemaType+test.qualifier, func(t *testing.T) {
			assert.Equal(t, test.want, ResolveType(test.schemaType, test.qualifier))
		})
	}
}

func TestClasses(t *testing.T) {
	out := Classes(testSchema())

	assert.Equal(t, `// This was generated. Do not edit.
// deno-lint-ignore-file
// deno-fmt-ignore-file

export class Class {
}

/**
 * base for updates
 */
export class Update extends Class {
}

export class UpdateChatPhoto extends Update {
  "@type" = "updateChatPhoto";
  chat_id: number;
  photo?: ChatPhoto;

  constructor(params: { chat_id: number, photo?: ChatPhoto }) {
    super();
    this.chat_id = params.chat_id;
    this.photo = params.photo;
  }
}

export class TestInt extends Class {
  "@type" = "testInt";
  int_value: number;

  constructor(params: { int_value: number }) {
    super();
    this.int_value = params.int_value;
  }
}

export class Ok extends Class {
  "@type" = "ok";

  constructor() {
    super();
  }
}

// This was generated. Do not edit.
`, out)
}

func TestClassesIncludeMarkersAfterSentinel(t *testing.T) {
	s := testSchema()
	s.Functions[2].Classes = []model.ClassMarker{{Name: "Late", Description: "declared late"}}

	out := Classes(s)

	assert.Contains(t, out, "export class Late extends Class {")
	assert.Greater(t, strings.Index(out, "class Late"), strings.Index(out, "class Ok"))
	assert.NotContains(t, out, "getTest")
}

func TestClient(t *testing.T) {
	out := Client(testSchema(), DefaultClientOptions())

	assert.Equal(t, `// This was generated. Do not edit.
// deno-lint-ignore-file
// deno-fmt-ignore-file

import { BaseClient } from "./base_client.ts";
import * as classes from "./classes.ts";

export class Client extends BaseClient {
  getTest(): Promise<classes.TestInt> {
    return this.send({ "@type": "getTest" });
  }

  setChatPhoto(params: { chat_id: number, photo?: classes.InputChatPhoto[] }): Promise<classes.Ok> {
    return this.send({ "@type": "setChatPhoto", ...params });
  }
}

// This was generated. Do not edit.
`, out)
}

func TestClientImports(t *testing.T) {
	out := Client(testSchema(), ClientOptions{
		BaseClientImport: "../runtime/base.ts",
		ClassesImport:    "./td_classes.ts",
	})

	assert.Contains(t, out, `import { BaseClient } from "../runtime/base.ts";`)
	assert.Contains(t, out, `import * as classes from "./td_classes.ts";`)
}
