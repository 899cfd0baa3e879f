package hookgen

import (
	"fmt"
	"strings"

	"github.com/mntm/graphql-codegen/codegen"
	"github.com/mntm/graphql-codegen/config"
)

const (
	clientModule      = "@mntm/graphql"
	swrModule         = "swr"
	swrMutationModule = "swr/mutation"
)

// ImportSet accumulates the imports of one generated file.
type ImportSet struct {
	operations int

	useQuery     bool
	useLazyQuery bool
	gqlRequest   bool
	swr          bool
	swrMutation  bool

	typesNamespace string
	typesPath      string
}

func NewImportSet(cfg config.PluginConfig) *ImportSet {
	return &ImportSet{
		typesNamespace: cfg.ImportOperationTypesFrom,
		typesPath:      cfg.OperationTypesPath,
	}
}

// Collect records what a rendered operation of the given kind needs.
func (s *ImportSet) Collect(kind codegen.Kind, cfg config.PluginConfig) {
	s.operations++

	if cfg.WithHooks {
		s.useLazyQuery = true
		if kind == codegen.KindQuery {
			s.useQuery = true
		}
	}
	if cfg.WithRequests {
		s.gqlRequest = true
	}
	if cfg.WithSWR {
		switch kind {
		case codegen.KindQuery:
			s.swr = true
		case codegen.KindMutation:
			s.swrMutation = true
		}
	}
}

// Lines returns the import statements in a fixed order. Without any collected
// operation nothing is imported.
func (s *ImportSet) Lines() []string {
	if s.operations == 0 {
		return nil
	}

	var lines []string

	if s.typesNamespace != "" && s.typesPath != "" {
		lines = append(lines, fmt.Sprintf("import type * as %s from '%s';", s.typesNamespace, s.typesPath))
	}

	var named []string
	if s.useQuery {
		named = append(named, "useQuery")
	}
	if s.useLazyQuery {
		named = append(named, "useLazyQuery")
	}
	if s.gqlRequest {
		named = append(named, "gqlRequest")
	}
	if len(named) > 0 {
		lines = append(lines, fmt.Sprintf("import { %s } from '%s';", strings.Join(named, ", "), clientModule))
	}

	if s.swr {
		lines = append(lines,
			fmt.Sprintf("import useSWR from '%s';", swrModule),
			fmt.Sprintf("import type { SWRConfiguration } from '%s';", swrModule),
		)
	}
	if s.swrMutation {
		lines = append(lines,
			fmt.Sprintf("import useSWRMutation from '%s';", swrMutationModule),
			fmt.Sprintf("import type { SWRMutationConfiguration } from '%s';", swrMutationModule),
		)
	}

	return lines
}
