package hookgen

import (
	"fmt"
)

const pureComment = "/*#__PURE__*/"

// HookFormatter formats the TypeScript exports of an operation.
type HookFormatter struct {
	pure string
}

// NewHookFormatter returns a HookFormatter. When pure is set every arrow
// function is prefixed with /*#__PURE__*/.
func NewHookFormatter(pure bool) *HookFormatter {
	f := &HookFormatter{}
	if pure {
		f.pure = pureComment
	}
	return f
}

type typeArgs struct {
	name      string // e.g. GetUserQuery
	result    string // e.g. GetUserQuery
	variables string // e.g. GetUserQueryVariables
	document  string // e.g. GetUserDocument
}

// FormatDocument formats the document constant, e.g.
// "export const GetUserDocument = `query GetUser{...}`;"
func (f *HookFormatter) FormatDocument(documentVariableName, document string) string {
	return fmt.Sprintf("export const %s = `%s`;\n", documentVariableName, document)
}

// FormatQueryHooks formats use<Name> and useLazy<Name> for a query.
func (f *HookFormatter) FormatQueryHooks(a typeArgs) string {
	return fmt.Sprintf(
		"export const use%[1]s = %[2]s(variables: %[3]s = {} as %[3]s) => { return useQuery<%[4]s, %[3]s>(%[5]s, variables); };\n"+
			"export const useLazy%[1]s = %[2]s() => { return useLazyQuery<%[4]s, %[3]s>(%[5]s); };\n",
		a.name, f.pure, a.variables, a.result, a.document,
	)
}

// FormatMutationHook formats the lazy use<Name> of a mutation. It takes no arguments.
func (f *HookFormatter) FormatMutationHook(a typeArgs) string {
	return fmt.Sprintf(
		"export const use%[1]s = %[2]s() => { return useLazyQuery<%[4]s, %[3]s>(%[5]s); };\n",
		a.name, f.pure, a.variables, a.result, a.document,
	)
}

// FormatRequest formats request<Name>, which resolves to the operation result.
// Variables default to a typed empty object.
func (f *HookFormatter) FormatRequest(a typeArgs) string {
	return fmt.Sprintf(
		"export const request%[1]s = %[2]s(variables: %[3]s = {} as %[3]s): Promise<%[4]s> => { return gqlRequest<%[4]s, %[3]s>(%[5]s, variables); };\n",
		a.name, f.pure, a.variables, a.result, a.document,
	)
}

// FormatSWRQuery formats useSWR<Name> for a query, keyed by name and variables.
func (f *HookFormatter) FormatSWRQuery(a typeArgs) string {
	return fmt.Sprintf(
		"export const useSWR%[1]s = %[2]s(variables: %[3]s = {} as %[3]s, config?: SWRConfiguration<%[4]s>) => { return useSWR<%[4]s>(['%[1]s', variables], () => request%[1]s(variables), config); };\n",
		a.name, f.pure, a.variables, a.result,
	)
}

// FormatSWRMutation formats useSWR<Name> for a mutation. The returned object
// carries the mutation state with trigger also exposed as dispatch.
func (f *HookFormatter) FormatSWRMutation(a typeArgs) string {
	return fmt.Sprintf(`export const useSWR%[1]s = %[2]s(config?: SWRMutationConfiguration<%[4]s, Error, string, %[3]s>) => {
  const { data, error, isMutating, reset, trigger } = useSWRMutation<%[4]s, Error, string, %[3]s>('%[1]s', (_key: string, { arg }: { arg: %[3]s }) => request%[1]s(arg), config);
  return { data, error, isMutating, reset, trigger, dispatch: trigger };
};
`,
		a.name, f.pure, a.variables, a.result,
	)
}
