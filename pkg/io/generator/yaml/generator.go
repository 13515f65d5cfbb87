// Package yamlgenerator renders models as YAML and optionally writes them to
// disk with skip-if-exists semantics.
package yamlgenerator

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/Aff245/fmaa-bdi-v1/pkg/fileutil"
)

// Options defines options for YAML generation.
type Options struct {
	// Output is the file path to write to. Empty means marshal only.
	Output string

	// Force overwrites an existing output file. Without it, an existing file
	// is left untouched and the rendered content is still returned.
	Force bool
}

// Generator marshals models to YAML.
type Generator[T any] struct{}

// NewGenerator creates a YAML generator for the model type.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{}
}

// Generate marshals the model to YAML and writes it to opts.Output when set.
// It returns the rendered YAML.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	var builder strings.Builder

	encoder := yaml.NewEncoder(&builder)
	encoder.SetIndent(2)

	err := encoder.Encode(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model to YAML: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return "", fmt.Errorf("failed to finalize YAML document: %w", err)
	}

	content := builder.String()

	if opts.Output == "" {
		return content, nil
	}

	_, err = fileutil.TryWriteFile(content, opts.Output, opts.Force)
	if err != nil {
		return "", fmt.Errorf("failed to write YAML output: %w", err)
	}

	return content, nil
}
