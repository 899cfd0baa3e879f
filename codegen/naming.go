package codegen

import (
	"strings"

	"github.com/ettle/strcase"

	"github.com/mntm/graphql-codegen/config"
)

// Namer derives the generated identifiers of a definition from its declared name.
// Uniqueness across a file follows from GraphQL's own unique-name rules.
type Namer struct {
	cfg config.PluginConfig
}

func NewNamer(cfg config.PluginConfig) *Namer {
	return &Namer{cfg: cfg}
}

// Convert applies the configured naming convention.
func (n *Namer) Convert(name string) string {
	if n.cfg.NamingConvention == config.NamingConventionKeep {
		return name
	}
	if n.cfg.TransformUnderscore {
		return strcase.ToPascal(name)
	}

	parts := strings.Split(name, "_")
	for i, part := range parts {
		parts[i] = strcase.ToPascal(part)
	}
	return strings.Join(parts, "_")
}

// OperationSuffix returns the kind suffix appended to an operation's names.
func (n *Namer) OperationSuffix(name string, kind Kind) string {
	if n.cfg.OmitOperationSuffix {
		return ""
	}
	suffix := kind.String()
	if n.cfg.DedupeOperationSuffix && strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix)) {
		return ""
	}
	return suffix
}

// OperationName is the base of the exported hook and request identifiers, e.g. GetUserQuery.
func (n *Namer) OperationName(name string, kind Kind) string {
	return n.Convert(name) + n.OperationSuffix(name, kind)
}

func (n *Namer) ResultType(name string, kind Kind) string {
	return n.typeReference(n.OperationName(name, kind))
}

func (n *Namer) VariablesType(name string, kind Kind) string {
	return n.typeReference(n.OperationName(name, kind) + "Variables")
}

func (n *Namer) DocumentVariableName(name string) string {
	return n.cfg.DocumentVariablePrefix + n.Convert(name) + n.cfg.DocumentVariableSuffix
}

func (n *Namer) FragmentVariableName(name string) string {
	return n.cfg.FragmentVariablePrefix + n.Convert(name) + n.cfg.FragmentVariableSuffix
}

func (n *Namer) typeReference(typeName string) string {
	typeName = n.cfg.TypesPrefix + typeName + n.cfg.TypesSuffix
	if n.cfg.ImportOperationTypesFrom != "" {
		return n.cfg.ImportOperationTypesFrom + "." + typeName
	}
	return typeName
}
