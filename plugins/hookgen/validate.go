package hookgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/mntm/graphql-codegen/config"
)

// ErrInvalidOutputTarget is returned when the output cannot hold the generated code.
var ErrInvalidOutputTarget = errors.New("invalid output target")

var allowedExtensions = []string{".ts", ".tsx"}

// Validate checks the preconditions of a generation run. It must pass before
// anything is rendered.
func Validate(outputFile string, cfg config.PluginConfig) error {
	if ext := filepath.Ext(outputFile); !slices.Contains(allowedExtensions, ext) {
		return fmt.Errorf("%w: plugin %q requires extension to be \".ts\" or \".tsx\", got %q", ErrInvalidOutputTarget, pluginName, outputFile)
	}

	if cfg.DocumentMode != config.DocumentModeString {
		return fmt.Errorf("%w: plugin %q requires \"documentMode: %s\", got %q", ErrInvalidOutputTarget, pluginName, config.DocumentModeString, cfg.DocumentMode)
	}

	return nil
}
