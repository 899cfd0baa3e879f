package hookgen

import (
	"fmt"
	"strings"

	"github.com/mntm/graphql-codegen/codegen"
	"github.com/mntm/graphql-codegen/config"
)

// BuildOperation renders the hooks, requests and SWR hooks of one operation, in
// that order. Anonymous operations and fragments contribute nothing. Every
// rendered operation is recorded in imports.
func BuildOperation(operation *codegen.Operation, cfg config.PluginConfig, imports *ImportSet) (string, error) {
	if operation.IsAnonymous() {
		return "", nil
	}

	switch operation.Kind {
	case codegen.KindQuery, codegen.KindMutation:
	case codegen.KindFragment:
		return "", nil
	case codegen.KindSubscription:
		return "", fmt.Errorf("%s is not yet supported: %w", operation.Kind, codegen.ErrUnsupportedOperationKind)
	default:
		return "", fmt.Errorf("%s: %w", operation.Kind, codegen.ErrUnsupportedOperationKind)
	}

	f := NewHookFormatter(cfg.PureMagicComment)
	args := typeArgs{
		name:      operation.OperationName,
		result:    operation.ResultType,
		variables: operation.VariablesType,
		document:  operation.DocumentVariableName,
	}

	var buf strings.Builder
	if cfg.WithHooks {
		buf.WriteString(buildHooks(f, operation.Kind, args))
	}
	if cfg.WithRequests {
		buf.WriteString(f.FormatRequest(args))
	}
	if cfg.WithSWR {
		buf.WriteString(buildSWR(f, operation.Kind, args))
	}

	imports.Collect(operation.Kind, cfg)

	return buf.String(), nil
}

func buildHooks(f *HookFormatter, kind codegen.Kind, args typeArgs) string {
	if kind == codegen.KindMutation {
		return f.FormatMutationHook(args)
	}
	return f.FormatQueryHooks(args)
}

func buildSWR(f *HookFormatter, kind codegen.Kind, args typeArgs) string {
	if kind == codegen.KindMutation {
		return f.FormatSWRMutation(args)
	}
	return f.FormatSWRQuery(args)
}
