package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mntm/graphql-codegen/config"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNamer(t *testing.T) {
	t.Parallel()

	type args struct {
		raw  *config.RawPluginConfig
		name string
		kind Kind
	}

	type want struct {
		operationName string
		resultType    string
		variablesType string
		document      string
		fragment      string
	}

	tests := []struct {
		name string
		args args
		want want
	}{
		{
			name: "defaults",
			args: args{name: "getUser", kind: KindQuery},
			want: want{
				operationName: "GetUserQuery",
				resultType:    "GetUserQuery",
				variablesType: "GetUserQueryVariables",
				document:      "GetUserDocument",
				fragment:      "GetUserFragmentDoc",
			},
		},
		{
			name: "omitOperationSuffix",
			args: args{raw: &config.RawPluginConfig{OmitOperationSuffix: ptr(true)}, name: "UpdateUser", kind: KindMutation},
			want: want{
				operationName: "UpdateUser",
				resultType:    "UpdateUser",
				variablesType: "UpdateUserVariables",
				document:      "UpdateUserDocument",
				fragment:      "UpdateUserFragmentDoc",
			},
		},
		{
			name: "dedupeOperationSuffix",
			args: args{raw: &config.RawPluginConfig{DedupeOperationSuffix: ptr(true)}, name: "UserQuery", kind: KindQuery},
			want: want{
				operationName: "UserQuery",
				resultType:    "UserQuery",
				variablesType: "UserQueryVariables",
				document:      "UserQueryDocument",
				fragment:      "UserQueryFragmentDoc",
			},
		},
		{
			name: "underscores are kept per part",
			args: args{name: "get_user", kind: KindQuery},
			want: want{
				operationName: "Get_UserQuery",
				resultType:    "Get_UserQuery",
				variablesType: "Get_UserQueryVariables",
				document:      "Get_UserDocument",
				fragment:      "Get_UserFragmentDoc",
			},
		},
		{
			name: "transformUnderscore",
			args: args{raw: &config.RawPluginConfig{TransformUnderscore: ptr(true)}, name: "get_user", kind: KindQuery},
			want: want{
				operationName: "GetUserQuery",
				resultType:    "GetUserQuery",
				variablesType: "GetUserQueryVariables",
				document:      "GetUserDocument",
				fragment:      "GetUserFragmentDoc",
			},
		},
		{
			name: "keep naming convention",
			args: args{raw: &config.RawPluginConfig{NamingConvention: config.NamingConventionKeep}, name: "getUser", kind: KindQuery},
			want: want{
				operationName: "getUserQuery",
				resultType:    "getUserQuery",
				variablesType: "getUserQueryVariables",
				document:      "getUserDocument",
				fragment:      "getUserFragmentDoc",
			},
		},
		{
			name: "prefixes, suffixes and namespace",
			args: args{
				raw: &config.RawPluginConfig{
					TypesPrefix:              "I",
					TypesSuffix:              "Type",
					DocumentVariablePrefix:   "Gql",
					DocumentVariableSuffix:   ptr("Doc"),
					FragmentVariablePrefix:   "Gql",
					FragmentVariableSuffix:   ptr(""),
					ImportOperationTypesFrom: "Operations",
				},
				name: "GetUser",
				kind: KindQuery,
			},
			want: want{
				operationName: "GetUserQuery",
				resultType:    "Operations.IGetUserQueryType",
				variablesType: "Operations.IGetUserQueryVariablesType",
				document:      "GqlGetUserDoc",
				fragment:      "GqlGetUser",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := NewNamer(tt.args.raw.Resolve())
			got := want{
				operationName: n.OperationName(tt.args.name, tt.args.kind),
				resultType:    n.ResultType(tt.args.name, tt.args.kind),
				variablesType: n.VariablesType(tt.args.name, tt.args.kind),
				document:      n.DocumentVariableName(tt.args.name),
				fragment:      n.FragmentVariableName(tt.args.name),
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(want{})); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
