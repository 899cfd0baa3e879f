package introspection

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/validator"
)

func ptr[T any](v T) *T {
	return &v
}

func named(kind TypeKind, name string) TypeRef {
	return TypeRef{Kind: kind, Name: ptr(name)}
}

func nonNull(ref TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindNonNull, OfType: &ref}
}

func list(ref TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindList, OfType: &ref}
}

func testQuery() Query {
	var q Query
	q.Schema.QueryType = OperationType{Name: ptr("Query")}
	q.Schema.MutationType = &OperationType{Name: ptr("Mutation")}
	q.Schema.Types = FullTypes{
		{Kind: TypeKindScalar, Name: ptr("String")},
		{Kind: TypeKindScalar, Name: ptr("ID")},
		{Kind: TypeKindObject, Name: ptr("__Schema")},
		{Kind: TypeKindScalar, Name: ptr("Time"), Description: ptr("RFC 3339 timestamp")},
		{
			Kind: TypeKindObject,
			Name: ptr("Query"),
			Fields: []*FieldValue{
				{
					Name: "users",
					Type: nonNull(list(nonNull(named(TypeKindInterface, "Node")))),
					Args: []*InputValue{
						{Name: "first", Type: named(TypeKindScalar, "Int"), DefaultValue: ptr("10")},
						{Name: "filter", Type: named(TypeKindInputObject, "UserFilter")},
					},
				},
			},
		},
		{
			Kind: TypeKindObject,
			Name: ptr("Mutation"),
			Fields: []*FieldValue{
				{Name: "touch", Type: named(TypeKindScalar, "Time"), IsDeprecated: true, DeprecationReason: ptr("no longer needed")},
			},
		},
		{
			Kind:   TypeKindInterface,
			Name:   ptr("Node"),
			Fields: []*FieldValue{{Name: "id", Type: nonNull(named(TypeKindScalar, "ID"))}},
		},
		{
			Kind:       TypeKindObject,
			Name:       ptr("User"),
			Interfaces: []*TypeRef{{Kind: TypeKindInterface, Name: ptr("Node")}},
			Fields: []*FieldValue{
				{Name: "id", Type: nonNull(named(TypeKindScalar, "ID"))},
				{Name: "role", Type: named(TypeKindEnum, "Role")},
			},
		},
		{
			Kind:          TypeKindUnion,
			Name:          ptr("SearchResult"),
			PossibleTypes: []*TypeRef{{Kind: TypeKindObject, Name: ptr("User")}},
		},
		{
			Kind: TypeKindEnum,
			Name: ptr("Role"),
			EnumValues: []*EnumValue{
				{Name: "ADMIN"},
				{Name: "GUEST", IsDeprecated: true},
			},
		},
		{
			Kind: TypeKindInputObject,
			Name: ptr("UserFilter"),
			InputFields: []*InputValue{
				{Name: "roles", Type: list(nonNull(named(TypeKindEnum, "Role"))), DefaultValue: ptr("[ADMIN]")},
				{Name: "name", Type: named(TypeKindScalar, "String"), DefaultValue: ptr(`"a \"b\""`)},
			},
		},
	}
	q.Schema.Directives = []*DirectiveType{
		{Name: "skip", Locations: []string{"FIELD"}},
		{Name: "cached", Locations: []string{"FIELD_DEFINITION"}, Args: []*InputValue{{Name: "ttl", Type: named(TypeKindScalar, "Int")}}},
	}

	return q
}

func TestSchemaFromIntrospection(t *testing.T) {
	t.Parallel()

	doc, err := SchemaFromIntrospection("http://localhost/graphql", testQuery())
	if err != nil {
		t.Fatalf("SchemaFromIntrospection() error = %v", err)
	}

	schema, err := validator.ValidateSchemaDocument(doc)
	if err != nil {
		t.Fatalf("ValidateSchemaDocument() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "query type", got: schema.Query.Name, want: "Query"},
		{name: "mutation type", got: schema.Mutation.Name, want: "Mutation"},
		{name: "no subscription", got: schema.Subscription == nil, want: true},
		{name: "wrapped field type", got: schema.Query.Fields.ForName("users").Type.String(), want: "[Node!]!"},
		{name: "int default", got: schema.Query.Fields.ForName("users").Arguments.ForName("first").DefaultValue.Raw, want: "10"},
		{name: "scalar description", got: schema.Types["Time"].Description, want: "RFC 3339 timestamp"},
		{name: "interfaces", got: schema.Types["User"].Interfaces, want: []string{"Node"}},
		{name: "union members", got: schema.Types["SearchResult"].Types, want: []string{"User"}},
		{name: "enum kind", got: schema.Types["Role"].Kind, want: ast.Enum},
		{name: "deprecated enum value", got: schema.Types["Role"].EnumValues.ForName("GUEST").Directives.ForName("deprecated") != nil, want: true},
		{name: "list default", got: schema.Types["UserFilter"].Fields.ForName("roles").DefaultValue.String(), want: "[ADMIN]"},
		{name: "string default", got: schema.Types["UserFilter"].Fields.ForName("name").DefaultValue.Raw, want: `a "b"`},
		{
			name: "deprecation reason",
			got:  schema.Mutation.Fields.ForName("touch").Directives.ForName("deprecated").Arguments.ForName("reason").Value.Raw,
			want: "no longer needed",
		},
		{name: "custom directive", got: schema.Directives["cached"].Arguments.ForName("ttl").Type.String(), want: "Int"},
		{name: "builtin directive is kept once", got: schema.Directives["skip"].Position.Src.BuiltIn, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestSchemaFromIntrospection_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   func() Query
		wantErr string
	}{
		{
			name:    "no types",
			query:   func() Query { return Query{} },
			wantErr: "introspection result has no types",
		},
		{
			name: "missing query type",
			query: func() Query {
				q := testQuery()
				q.Schema.QueryType = OperationType{Name: ptr("Root")}
				return q
			},
			wantErr: "query type Root is not among the introspected types",
		},
		{
			name: "unknown kind",
			query: func() Query {
				q := testQuery()
				q.Schema.Types = append(q.Schema.Types, &FullType{Kind: "WIDGET", Name: ptr("Widget")})
				return q
			},
			wantErr: "Widget: unexpected type kind WIDGET",
		},
		{
			name: "non-null without ofType",
			query: func() Query {
				q := testQuery()
				q.Schema.Types = append(q.Schema.Types, &FullType{
					Kind:   TypeKindObject,
					Name:   ptr("Broken"),
					Fields: []*FieldValue{{Name: "id", Type: TypeRef{Kind: TypeKindNonNull}}},
				})
				return q
			},
			wantErr: "Broken: field id: NON_NULL without ofType",
		},
		{
			name: "invalid default value",
			query: func() Query {
				q := testQuery()
				q.Schema.Directives = append(q.Schema.Directives, &DirectiveType{
					Name:      "limit",
					Locations: []string{"FIELD"},
					Args:      []*InputValue{{Name: "max", Type: named(TypeKindScalar, "Int"), DefaultValue: ptr("{")}},
				})
				return q
			},
			wantErr: `directive @limit: argument max: invalid default value "{"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := SchemaFromIntrospection("http://localhost/graphql", tt.query())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("SchemaFromIntrospection() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFullTypes_NameMap(t *testing.T) {
	t.Parallel()

	types := FullTypes{
		{Kind: TypeKindScalar, Name: ptr("Time")},
		{Kind: TypeKindObject},
	}

	got := types.NameMap()
	if len(got) != 1 || got["Time"] != types[0] {
		t.Errorf("NameMap() = %v", got)
	}
}
