package plugins

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/99designs/gqlgen/plugin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mntm/graphql-codegen/codegen"
	"github.com/mntm/graphql-codegen/config"
	"github.com/mntm/graphql-codegen/plugins/hookgen"
)

// Renderer is what the generator needs from an output plugin. Plugins are
// named the way gqlgen names its plugins.
type Renderer interface {
	plugin.Plugin
	// DocumentText returns the document constant of a definition.
	DocumentText(operation *codegen.Operation) string
	// Render returns the per-operation exports of a definition.
	Render(operation *codegen.Operation) (string, error)
	// Imports returns the file prologue for everything rendered so far.
	Imports() []string
}

var _ Renderer = &hookgen.Plugin{}

// GenerateCode renders cfg.QueryDocument and writes the result to cfg.Output.
func GenerateCode(cfg *config.Config, fs afero.Fs) error {
	pluginConfig := cfg.PluginConfig()
	if err := hookgen.Validate(cfg.Output, pluginConfig); err != nil {
		return err
	}

	operations, err := codegen.NewOperationGenerator(pluginConfig, cfg.QueryDocument.Fragments).CreateOperations(cfg.QueryDocument)
	if err != nil {
		return fmt.Errorf("failed to create operations: %w", err)
	}

	hookGen := hookgen.New(pluginConfig)
	content, err := Render(hookGen, operations)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := afero.WriteFile(fs, cfg.Output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	var operationCount, fragmentCount int
	for _, operation := range operations {
		if operation.Kind.IsOperation() {
			operationCount++
		} else {
			fragmentCount++
		}
	}
	logrus.WithFields(logrus.Fields{
		"file":       cfg.Output,
		"operations": operationCount,
		"fragments":  fragmentCount,
	}).Info("generated")

	return nil
}

// Render renders operations in order and prepends the imports they need.
func Render(renderer Renderer, operations []*codegen.Operation) (string, error) {
	chunks := make([]string, 0, len(operations))
	for _, operation := range operations {
		out, err := renderer.Render(operation)
		if err != nil {
			return "", fmt.Errorf("%s failed: %s: %w", renderer.Name(), operation, err)
		}

		chunk := renderer.DocumentText(operation) + out
		if chunk == "" {
			logrus.WithField("definition", operation.String()).Debug("skipped")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"definition": operation.String(),
			"spreads":    operation.Dependencies,
		}).Debug("rendered")
		chunks = append(chunks, chunk)
	}

	var buf strings.Builder
	if imports := renderer.Imports(); len(imports) > 0 {
		buf.WriteString(strings.Join(imports, "\n"))
		buf.WriteString("\n\n")
	}
	buf.WriteString(strings.Join(chunks, "\n"))

	return buf.String(), nil
}
