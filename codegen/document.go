package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/mntm/graphql-codegen/config"
)

// templateLiteralEscaper makes printed GraphQL safe inside a backtick literal.
// It runs once per definition on the printed text, never on its own output.
var templateLiteralEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

// DocumentPrinter serializes operations and fragments into the body of a
// template literal. Printed fragment bodies are cached for the printer's lifetime,
// which is one generation run.
type DocumentPrinter struct {
	cfg       config.PluginConfig
	namer     *Namer
	fragments map[string]*ast.FragmentDefinition
	cache     map[string]string
}

func NewDocumentPrinter(cfg config.PluginConfig, namer *Namer, fragments ast.FragmentDefinitionList) *DocumentPrinter {
	byName := make(map[string]*ast.FragmentDefinition, len(fragments))
	for _, fragment := range fragments {
		byName[fragment.Name] = fragment
	}

	return &DocumentPrinter{
		cfg:       cfg,
		namer:     namer,
		fragments: byName,
		cache:     make(map[string]string, len(fragments)),
	}
}

// OperationDocument returns the document text of an operation.
func (p *DocumentPrinter) OperationDocument(operation *ast.OperationDefinition) (string, error) {
	body, err := p.body(&ast.QueryDocument{Operations: ast.OperationList{operation}})
	if err != nil {
		return "", fmt.Errorf("operation %s: %w", operation.Name, err)
	}

	includes := SpreadNames(operation.SelectionSet)
	if p.cfg.DedupeFragments {
		includes = p.closure(includes)
	}

	return p.join(body, includes), nil
}

// FragmentDocument returns the document text of a fragment.
func (p *DocumentPrinter) FragmentDocument(fragment *ast.FragmentDefinition) (string, error) {
	body, ok := p.cache[fragment.Name]
	if !ok {
		var err error
		body, err = p.body(&ast.QueryDocument{Fragments: ast.FragmentDefinitionList{fragment}})
		if err != nil {
			return "", fmt.Errorf("fragment %s: %w", fragment.Name, err)
		}
		p.cache[fragment.Name] = body
	}

	var includes []string
	if !p.cfg.DedupeFragments {
		includes = SpreadNames(fragment.SelectionSet)
	}

	return p.join(body, includes), nil
}

func (p *DocumentPrinter) body(doc *ast.QueryDocument) (string, error) {
	printed := Print(doc)
	if p.cfg.OptimizeDocumentNode {
		minified, err := Minify(printed)
		if err != nil {
			return "", err
		}
		printed = minified
	}

	return templateLiteralEscaper.Replace(printed), nil
}

func (p *DocumentPrinter) join(body string, includes []string) string {
	interpolations := make([]string, 0, len(includes))
	for _, name := range includes {
		interpolations = append(interpolations, "${"+p.namer.FragmentVariableName(name)+"}")
	}

	if p.cfg.OptimizeDocumentNode {
		return body + strings.Join(interpolations, "")
	}
	return "\n    " + body + "\n    " + strings.Join(interpolations, "\n")
}

// closure returns names followed by every fragment they reach, each once.
func (p *DocumentPrinter) closure(names []string) []string {
	seen := make(map[string]bool, len(p.fragments))
	var result []string

	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		result = append(result, name)
		if fragment, ok := p.fragments[name]; ok {
			for _, spread := range SpreadNames(fragment.SelectionSet) {
				visit(spread)
			}
		}
	}
	for _, name := range names {
		visit(name)
	}

	return result
}

// Print renders doc in canonical GraphQL syntax. The formatter quotes strings
// with Go escapes, so string values are printed through placeholders and
// re-quoted as GraphQL string literals afterwards.
func Print(doc *ast.QueryDocument) string {
	values := stringValues(doc)
	raws := make([]string, len(values))
	quoted := make([]string, 0, 2*len(values))
	for i, value := range values {
		raws[i] = value.Raw
		placeholder := fmt.Sprintf("codegen:string:%d", i)
		quoted = append(quoted, strconv.Quote(placeholder), quoteString(value.Raw))
		value.Raw = placeholder
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf, formatter.WithIndent("  ")).FormatQueryDocument(doc)

	for i, value := range values {
		value.Raw = raws[i]
	}

	return strings.NewReplacer(quoted...).Replace(strings.TrimSpace(buf.String()))
}

// stringValues collects the string and block string values of doc, each once.
func stringValues(doc *ast.QueryDocument) []*ast.Value {
	var values []*ast.Value
	seen := map[*ast.Value]bool{}

	var value func(*ast.Value)
	value = func(v *ast.Value) {
		if v == nil || seen[v] {
			return
		}
		seen[v] = true
		if v.Kind == ast.StringValue || v.Kind == ast.BlockValue {
			values = append(values, v)
		}
		for _, child := range v.Children {
			value(child.Value)
		}
	}
	directives := func(list ast.DirectiveList) {
		for _, directive := range list {
			for _, arg := range directive.Arguments {
				value(arg.Value)
			}
		}
	}
	variables := func(list ast.VariableDefinitionList) {
		for _, variable := range list {
			value(variable.DefaultValue)
			directives(variable.Directives)
		}
	}

	var selections func(ast.SelectionSet)
	selections = func(set ast.SelectionSet) {
		for _, selection := range set {
			switch sel := selection.(type) {
			case *ast.Field:
				for _, arg := range sel.Arguments {
					value(arg.Value)
				}
				directives(sel.Directives)
				selections(sel.SelectionSet)
			case *ast.InlineFragment:
				directives(sel.Directives)
				selections(sel.SelectionSet)
			case *ast.FragmentSpread:
				directives(sel.Directives)
			}
		}
	}

	for _, operation := range doc.Operations {
		variables(operation.VariableDefinitions)
		directives(operation.Directives)
		selections(operation.SelectionSet)
	}
	for _, fragment := range doc.Fragments {
		variables(fragment.VariableDefinition)
		directives(fragment.Directives)
		selections(fragment.SelectionSet)
	}

	return values
}

// SpreadNames lists the fragments spread directly in selectionSet, in order of
// first appearance. Inline fragments are searched, spread fragments are not.
func SpreadNames(selectionSet ast.SelectionSet) []string {
	var names []string
	seen := map[string]bool{}

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, selection := range set {
			switch sel := selection.(type) {
			case *ast.Field:
				walk(sel.SelectionSet)
			case *ast.InlineFragment:
				walk(sel.SelectionSet)
			case *ast.FragmentSpread:
				if !seen[sel.Name] {
					seen[sel.Name] = true
					names = append(names, sel.Name)
				}
			}
		}
	}
	walk(selectionSet)

	return names
}
