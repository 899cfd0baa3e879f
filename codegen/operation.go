package codegen

import (
	"fmt"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/mntm/graphql-codegen/config"
)

// Operation describes one operation or fragment to render. It is built once per
// definition and never mutated afterwards.
type Operation struct {
	Kind Kind
	// Name is the declared name, empty for anonymous operations.
	Name                 string
	OperationName        string
	DocumentVariableName string
	ResultType           string
	VariablesType        string
	// Document is the escaped template literal body, without backticks.
	Document string
	// Dependencies are the fragments spread directly by the definition.
	Dependencies []string
}

// IsAnonymous reports whether the definition has no name to export under.
func (o *Operation) IsAnonymous() bool {
	return o.Name == ""
}

type OperationGenerator struct {
	namer   *Namer
	printer *DocumentPrinter
}

func NewOperationGenerator(cfg config.PluginConfig, fragments ast.FragmentDefinitionList) *OperationGenerator {
	namer := NewNamer(cfg)
	return &OperationGenerator{
		namer:   namer,
		printer: NewDocumentPrinter(cfg, namer, fragments),
	}
}

// CreateOperations returns the fragments of queryDocument in dependency order
// followed by its operations in source order.
func (g *OperationGenerator) CreateOperations(queryDocument *ast.QueryDocument) ([]*Operation, error) {
	operations := make([]*Operation, 0, len(queryDocument.Fragments)+len(queryDocument.Operations))

	for _, fragment := range SortFragments(queryDocument.Fragments) {
		operation, err := g.newFragment(fragment)
		if err != nil {
			return nil, err
		}
		operations = append(operations, operation)
	}

	for _, definition := range queryDocument.Operations {
		operation, err := g.newOperation(definition)
		if err != nil {
			return nil, err
		}
		operations = append(operations, operation)
	}

	return operations, nil
}

func (g *OperationGenerator) newFragment(fragment *ast.FragmentDefinition) (*Operation, error) {
	document, err := g.printer.FragmentDocument(fragment)
	if err != nil {
		return nil, err
	}

	return &Operation{
		Kind:                 KindFragment,
		Name:                 fragment.Name,
		OperationName:        g.namer.Convert(fragment.Name),
		DocumentVariableName: g.namer.FragmentVariableName(fragment.Name),
		Document:             document,
		Dependencies:         SpreadNames(fragment.SelectionSet),
	}, nil
}

func (g *OperationGenerator) newOperation(definition *ast.OperationDefinition) (*Operation, error) {
	kind, err := ParseKind(string(definition.Operation))
	if err != nil {
		return nil, err
	}

	operation := &Operation{
		Kind:         kind,
		Name:         definition.Name,
		Dependencies: SpreadNames(definition.SelectionSet),
	}
	if operation.IsAnonymous() {
		return operation, nil
	}

	document, err := g.printer.OperationDocument(definition)
	if err != nil {
		return nil, err
	}

	operation.OperationName = g.namer.OperationName(definition.Name, kind)
	operation.DocumentVariableName = g.namer.DocumentVariableName(definition.Name)
	operation.ResultType = g.namer.ResultType(definition.Name, kind)
	operation.VariablesType = g.namer.VariablesType(definition.Name, kind)
	operation.Document = document

	return operation, nil
}

// SortFragments orders fragments so that every fragment follows the fragments it
// spreads. Independent fragments are ordered by name.
func SortFragments(fragments ast.FragmentDefinitionList) ast.FragmentDefinitionList {
	byName := make(map[string]*ast.FragmentDefinition, len(fragments))
	for _, fragment := range fragments {
		byName[fragment.Name] = fragment
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	sorted := make(ast.FragmentDefinitionList, 0, len(byName))
	visited := make(map[string]bool, len(byName))

	var visit func(name string)
	visit = func(name string) {
		fragment, ok := byName[name]
		if !ok || visited[name] {
			return
		}
		visited[name] = true
		dependencies := SpreadNames(fragment.SelectionSet)
		slices.Sort(dependencies)
		for _, dependency := range dependencies {
			visit(dependency)
		}
		sorted = append(sorted, fragment)
	}
	for _, name := range names {
		visit(name)
	}

	return sorted
}

func (o *Operation) String() string {
	if o.IsAnonymous() {
		return fmt.Sprintf("anonymous %s", o.Kind)
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Name)
}
