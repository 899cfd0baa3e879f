package queryparser

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
	// registers the standard validation rules
	_ "github.com/vektah/gqlparser/v2/validator/rules"
)

// ignoredRules are validation rules that do not apply to a set of client documents.
// A fragment may be declared for another output and never used here.
var ignoredRules = []string{"NoUnusedFragments"}

// ExpandPatterns expands glob patterns into a sorted, de-duplicated list of files.
// A "**" segment matches any number of directories. A pattern matching nothing is an error.
func ExpandPatterns(fs afero.Fs, patterns []string) ([]string, error) {
	var filenames []string
	for _, pattern := range patterns {
		var (
			matches []string
			err     error
		)
		if strings.Contains(pattern, "**") {
			matches, err = walkPattern(fs, pattern)
		} else {
			matches, err = afero.Glob(fs, pattern)
		}
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		filenames = append(filenames, matches...)
	}

	slices.Sort(filenames)
	return slices.Compact(filenames), nil
}

// walkPattern matches the part of pattern after "**" against the trailing
// segments of every file below the part before it.
func walkPattern(fs afero.Fs, pattern string) ([]string, error) {
	root, rest, _ := strings.Cut(pattern, "**")
	rest = filepath.ToSlash(strings.TrimLeft(rest, `/\`))
	if root == "" {
		root = "."
	}

	var matches []string
	err := afero.Walk(fs, root, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if rest == "" {
			matches = append(matches, file)
			return nil
		}

		rel, err := filepath.Rel(root, file)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		n := strings.Count(rest, "/") + 1
		if len(segments) < n {
			return nil
		}
		ok, err := path.Match(rest, strings.Join(segments[len(segments)-n:], "/"))
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, file)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk schema at root %s: %w", root, err)
	}

	return matches, nil
}

// LoadQuerySources reads every file matched by patterns.
func LoadQuerySources(fs afero.Fs, patterns []string) ([]*ast.Source, error) {
	filenames, err := ExpandPatterns(fs, patterns)
	if err != nil {
		return nil, err
	}

	sources := make([]*ast.Source, 0, len(filenames))
	for _, filename := range filenames {
		content, err := afero.ReadFile(fs, filename)
		if err != nil {
			return nil, fmt.Errorf("unable to open %s: %w", filename, err)
		}
		sources = append(sources, &ast.Source{Name: filename, Input: string(content)})
	}

	return sources, nil
}

// QueryDocument parses sources into a single document and validates it against schema.
func QueryDocument(schema *ast.Schema, sources []*ast.Source) (*ast.QueryDocument, error) {
	var merged ast.QueryDocument
	for _, source := range sources {
		doc, err := parser.ParseQuery(source)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", source.Name, err)
		}
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}

	if errs := relevantErrors(validator.Validate(schema, &merged)); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %w", errs)
	}

	return &merged, nil
}

func relevantErrors(errs gqlerror.List) gqlerror.List {
	var result gqlerror.List
	for _, err := range errs {
		if slices.Contains(ignoredRules, err.Rule) {
			continue
		}
		result = append(result, err)
	}
	return result
}
