package codegen

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
)

var punctuators = map[lexer.Type]string{
	lexer.Bang:     "!",
	lexer.Dollar:   "$",
	lexer.Amp:      "&",
	lexer.ParenL:   "(",
	lexer.ParenR:   ")",
	lexer.Spread:   "...",
	lexer.Colon:    ":",
	lexer.Equals:   "=",
	lexer.At:       "@",
	lexer.BracketL: "[",
	lexer.BracketR: "]",
	lexer.BraceL:   "{",
	lexer.Pipe:     "|",
	lexer.BraceR:   "}",
}

// Minify strips comments, commas and insignificant whitespace from a GraphQL document.
// The result parses to the same document as the input.
func Minify(document string) (string, error) {
	lex := lexer.New(&ast.Source{Name: "document", Input: document})

	var (
		buf      strings.Builder
		lastWord bool
	)
	for {
		tok, err := lex.ReadToken()
		if err != nil {
			return "", fmt.Errorf("minify document: %w", err)
		}

		switch tok.Kind {
		case lexer.EOF:
			return buf.String(), nil
		case lexer.Comment:
			continue
		case lexer.Name, lexer.Int, lexer.Float:
			// two adjacent words need a separator
			if lastWord {
				buf.WriteByte(' ')
			}
			buf.WriteString(tok.Value)
			lastWord = true
		case lexer.String, lexer.BlockString:
			buf.WriteString(quoteString(tok.Value))
			lastWord = false
		default:
			p, ok := punctuators[tok.Kind]
			if !ok {
				return "", fmt.Errorf("minify document: unexpected token %q at %d:%d", tok.Value, tok.Pos.Line, tok.Pos.Column)
			}
			buf.WriteString(p)
			lastWord = false
		}
	}
}

// quoteString encodes s as a GraphQL string literal.
func quoteString(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
