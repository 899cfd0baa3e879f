package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/mntm/graphql-codegen/config"
)

func TestOperationGenerator_CreateOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []*Operation
	}{
		{
			name: "fragments come first in dependency order",
			query: fragmentsQuery + `
mutation UpdateUser($id: ID!, $name: String) {
  updateUser(id: $id, name: $name) {
    id
  }
}
`,
			want: []*Operation{
				{
					Kind:                 KindFragment,
					Name:                 "UserName",
					OperationName:        "UserName",
					DocumentVariableName: "UserNameFragmentDoc",
					Document:             "fragment UserName on User{name}",
				},
				{
					Kind:                 KindFragment,
					Name:                 "UserFields",
					OperationName:        "UserFields",
					DocumentVariableName: "UserFieldsFragmentDoc",
					Document:             "fragment UserFields on User{id...UserName}${UserNameFragmentDoc}",
					Dependencies:         []string{"UserName"},
				},
				{
					Kind:                 KindQuery,
					Name:                 "GetUser",
					OperationName:        "GetUserQuery",
					DocumentVariableName: "GetUserDocument",
					ResultType:           "GetUserQuery",
					VariablesType:        "GetUserQueryVariables",
					Document:             "query GetUser($id:ID!){user(id:$id){...UserFields}}${UserFieldsFragmentDoc}",
					Dependencies:         []string{"UserFields"},
				},
				{
					Kind:                 KindMutation,
					Name:                 "UpdateUser",
					OperationName:        "UpdateUserMutation",
					DocumentVariableName: "UpdateUserDocument",
					ResultType:           "UpdateUserMutation",
					VariablesType:        "UpdateUserMutationVariables",
					Document:             "mutation UpdateUser($id:ID!$name:String){updateUser(id:$id name:$name){id}}",
				},
			},
		},
		{
			name:  "anonymous operation has no names",
			query: `{ users { id } }`,
			want: []*Operation{
				{Kind: KindQuery},
			},
		},
		{
			name:  "subscription is described",
			query: `subscription OnUserUpdated { userUpdated { id } }`,
			want: []*Operation{
				{
					Kind:                 KindSubscription,
					Name:                 "OnUserUpdated",
					OperationName:        "OnUserUpdatedSubscription",
					DocumentVariableName: "OnUserUpdatedDocument",
					ResultType:           "OnUserUpdatedSubscription",
					VariablesType:        "OnUserUpdatedSubscriptionVariables",
					Document:             "subscription OnUserUpdated{userUpdated{id}}",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parseQuery(t, tt.query)
			got, err := NewOperationGenerator((&config.RawPluginConfig{}).Resolve(), doc.Fragments).CreateOperations(doc)
			if err != nil {
				t.Fatalf("CreateOperations() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestSortFragments(t *testing.T) {
	t.Parallel()

	doc := parseQuery(t, `
fragment A on User { ...C }
fragment B on User { id }
fragment C on User { ...B ...D }
fragment D on User { name }
fragment E on User { id }
`)

	var got []string
	for _, fragment := range SortFragments(doc.Fragments) {
		got = append(got, fragment.Name)
	}

	want := []string{"B", "D", "C", "A", "E"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
}

func TestSortFragments_Empty(t *testing.T) {
	t.Parallel()

	if got := SortFragments(ast.FragmentDefinitionList{}); len(got) != 0 {
		t.Errorf("SortFragments() = %v, want empty", got)
	}
}

func TestOperation_String(t *testing.T) {
	t.Parallel()

	got := []string{
		(&Operation{Kind: KindQuery, Name: "GetUser"}).String(),
		(&Operation{Kind: KindMutation}).String(),
	}
	want := []string{"Query GetUser", "anonymous Mutation"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
}
