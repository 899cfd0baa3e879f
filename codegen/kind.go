package codegen

import (
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/codegen/templates"
)

// ErrUnsupportedOperationKind is returned for definitions that cannot be rendered.
var ErrUnsupportedOperationKind = errors.New("unsupported operation kind")

// Kind is the kind of a GraphQL definition handed to a renderer.
type Kind int

const (
	KindQuery Kind = iota + 1
	KindMutation
	// KindSubscription is parsed so that the renderer can reject it explicitly.
	KindSubscription
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "Query"
	case KindMutation:
		return "Mutation"
	case KindSubscription:
		return "Subscription"
	case KindFragment:
		return "Fragment"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperation reports whether k is an executable operation rather than a fragment.
func (k Kind) IsOperation() bool {
	return k == KindQuery || k == KindMutation || k == KindSubscription
}

// ParseKind title-cases raw ("query" -> "Query") and maps it onto a Kind.
func ParseKind(raw string) (Kind, error) {
	switch title := templates.UcFirst(raw); title {
	case "Query":
		return KindQuery, nil
	case "Mutation":
		return KindMutation, nil
	case "Subscription":
		return KindSubscription, nil
	case "Fragment":
		return KindFragment, nil
	default:
		return 0, fmt.Errorf("%s: %w", title, ErrUnsupportedOperationKind)
	}
}
