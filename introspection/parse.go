package introspection

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// SchemaFromIntrospection converts an introspection result into a schema document.
// Built-in scalars, introspection types and directives come from the gqlparser
// prelude, so the document can be validated on its own.
func SchemaFromIntrospection(endpoint string, res Query) (*ast.SchemaDocument, error) {
	if len(res.Schema.Types) == 0 {
		return nil, errors.New("introspection result has no types")
	}
	if name := res.Schema.QueryType.Name; name != nil && res.Schema.Types.NameMap()[*name] == nil {
		return nil, fmt.Errorf("query type %s is not among the introspected types", *name)
	}

	doc, err := parser.ParseSchema(validator.Prelude)
	if err != nil {
		return nil, fmt.Errorf("parse prelude: %w", err)
	}

	builtin := make(map[string]bool, len(doc.Definitions)+len(doc.Directives))
	for _, def := range doc.Definitions {
		builtin[def.Name] = true
	}
	for _, dir := range doc.Directives {
		builtin["@"+dir.Name] = true
	}

	p := &converter{pos: &ast.Position{Src: &ast.Source{Name: endpoint}}}

	for _, typ := range res.Schema.Types {
		if typ.Name == nil || builtin[*typ.Name] {
			continue
		}
		def, err := p.definition(typ)
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}

	for _, dir := range res.Schema.Directives {
		if builtin["@"+dir.Name] {
			continue
		}
		def, err := p.directive(dir)
		if err != nil {
			return nil, err
		}
		doc.Directives = append(doc.Directives, def)
	}

	doc.Schema = append(doc.Schema, p.schema(res))

	return doc, nil
}

type converter struct {
	pos *ast.Position
}

func (p *converter) schema(res Query) *ast.SchemaDefinition {
	def := &ast.SchemaDefinition{Position: p.pos}
	add := func(operation ast.Operation, t *OperationType) {
		if t == nil || t.Name == nil {
			return
		}
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: operation,
			Type:      *t.Name,
			Position:  p.pos,
		})
	}
	add(ast.Query, &res.Schema.QueryType)
	add(ast.Mutation, res.Schema.MutationType)
	add(ast.Subscription, res.Schema.SubscriptionType)

	return def
}

func (p *converter) definition(typ *FullType) (*ast.Definition, error) {
	def := &ast.Definition{
		Name:        *typ.Name,
		Description: deref(typ.Description),
		Position:    p.pos,
	}

	switch typ.Kind {
	case TypeKindScalar:
		def.Kind = ast.Scalar
	case TypeKindObject, TypeKindInterface:
		def.Kind = ast.Object
		if typ.Kind == TypeKindInterface {
			def.Kind = ast.Interface
		}
		for _, i := range typ.Interfaces {
			def.Interfaces = append(def.Interfaces, deref(i.Name))
		}
		for _, field := range typ.Fields {
			f, err := p.field(field)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", def.Name, err)
			}
			def.Fields = append(def.Fields, f)
		}
	case TypeKindUnion:
		def.Kind = ast.Union
		for _, t := range typ.PossibleTypes {
			def.Types = append(def.Types, deref(t.Name))
		}
	case TypeKindEnum:
		def.Kind = ast.Enum
		for _, v := range typ.EnumValues {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Name:        v.Name,
				Description: deref(v.Description),
				Directives:  p.deprecated(v.IsDeprecated, v.DeprecationReason),
				Position:    p.pos,
			})
		}
	case TypeKindInputObject:
		def.Kind = ast.InputObject
		for _, v := range typ.InputFields {
			arg, err := p.inputValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", def.Name, err)
			}
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name:         arg.Name,
				Description:  arg.Description,
				Type:         arg.Type,
				DefaultValue: arg.DefaultValue,
				Position:     p.pos,
			})
		}
	default:
		return nil, fmt.Errorf("%s: unexpected type kind %s", def.Name, typ.Kind)
	}

	return def, nil
}

func (p *converter) field(field *FieldValue) (*ast.FieldDefinition, error) {
	t, err := p.typeRef(&field.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}

	def := &ast.FieldDefinition{
		Name:        field.Name,
		Description: deref(field.Description),
		Type:        t,
		Directives:  p.deprecated(field.IsDeprecated, field.DeprecationReason),
		Position:    p.pos,
	}
	for _, arg := range field.Args {
		a, err := p.inputValue(arg)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		def.Arguments = append(def.Arguments, a)
	}

	return def, nil
}

func (p *converter) directive(dir *DirectiveType) (*ast.DirectiveDefinition, error) {
	def := &ast.DirectiveDefinition{
		Name:        dir.Name,
		Description: deref(dir.Description),
		Position:    p.pos,
	}
	for _, location := range dir.Locations {
		def.Locations = append(def.Locations, ast.DirectiveLocation(location))
	}
	for _, arg := range dir.Args {
		a, err := p.inputValue(arg)
		if err != nil {
			return nil, fmt.Errorf("directive @%s: %w", dir.Name, err)
		}
		def.Arguments = append(def.Arguments, a)
	}

	return def, nil
}

func (p *converter) inputValue(v *InputValue) (*ast.ArgumentDefinition, error) {
	t, err := p.typeRef(&v.Type)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", v.Name, err)
	}

	arg := &ast.ArgumentDefinition{
		Name:        v.Name,
		Description: deref(v.Description),
		Type:        t,
		Position:    p.pos,
	}
	if v.DefaultValue != nil {
		arg.DefaultValue, err = parseValue(*v.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", v.Name, err)
		}
	}

	return arg, nil
}

func (p *converter) typeRef(ref *TypeRef) (*ast.Type, error) {
	switch ref.Kind {
	case TypeKindNonNull:
		if ref.OfType == nil {
			return nil, errors.New("NON_NULL without ofType")
		}
		t, err := p.typeRef(ref.OfType)
		if err != nil {
			return nil, err
		}
		t.NonNull = true
		return t, nil
	case TypeKindList:
		if ref.OfType == nil {
			return nil, errors.New("LIST without ofType")
		}
		elem, err := p.typeRef(ref.OfType)
		if err != nil {
			return nil, err
		}
		return ast.ListType(elem, p.pos), nil
	default:
		if ref.Name == nil {
			return nil, fmt.Errorf("%s type without name", ref.Kind)
		}
		return ast.NamedType(*ref.Name, p.pos), nil
	}
}

func (p *converter) deprecated(isDeprecated bool, reason *string) ast.DirectiveList {
	if !isDeprecated {
		return nil
	}

	directive := &ast.Directive{Name: "deprecated", Position: p.pos}
	if reason != nil {
		directive.Arguments = ast.ArgumentList{{
			Name:     "reason",
			Value:    &ast.Value{Kind: ast.StringValue, Raw: *reason, Position: p.pos},
			Position: p.pos,
		}}
	}

	return ast.DirectiveList{directive}
}

// parseValue parses a default value printed in GraphQL syntax.
func parseValue(raw string) (*ast.Value, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "defaultValue", Input: "{f(v:" + raw + ")}"})
	if err != nil {
		return nil, fmt.Errorf("invalid default value %q: %w", raw, err)
	}

	field, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	if !ok || len(field.Arguments) != 1 {
		return nil, fmt.Errorf("invalid default value %q", raw)
	}

	return field.Arguments[0].Value, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
