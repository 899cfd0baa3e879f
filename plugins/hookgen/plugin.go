// Package hookgen renders typed data-fetching hooks and request functions for
// @mntm/graphql from GraphQL operations.
//
// For every named query it emits use<Name> and useLazy<Name>, for every named
// mutation a lazy use<Name>. Request functions and stale-while-revalidate hooks are
// enabled by withRequests and withSWR. Document constants are always emitted.
package hookgen

import (
	"github.com/mntm/graphql-codegen/codegen"
	"github.com/mntm/graphql-codegen/config"
)

const pluginName = "@mntm/graphql-codegen"

// Plugin renders one output file. Its import list accumulates over the file.
type Plugin struct {
	cfg       config.PluginConfig
	formatter *HookFormatter
	imports   *ImportSet
}

func New(cfg config.PluginConfig) *Plugin {
	return &Plugin{
		cfg:       cfg,
		formatter: NewHookFormatter(cfg.PureMagicComment),
		imports:   NewImportSet(cfg),
	}
}

func (p *Plugin) Name() string {
	return pluginName
}

// DocumentText returns the document constant of a definition. Anonymous
// operations have no name to bind it to and yield an empty string.
func (p *Plugin) DocumentText(operation *codegen.Operation) string {
	if operation.IsAnonymous() {
		return ""
	}
	return p.formatter.FormatDocument(operation.DocumentVariableName, operation.Document)
}

// Render returns the hook output of a definition.
func (p *Plugin) Render(operation *codegen.Operation) (string, error) {
	return BuildOperation(operation, p.cfg, p.imports)
}

// Imports returns the import statements needed by everything rendered so far.
func (p *Plugin) Imports() []string {
	return p.imports.Lines()
}
