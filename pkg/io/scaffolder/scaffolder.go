// Package scaffolder generates starter FMAA project files.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	"github.com/Aff245/fmaa-bdi-v1/pkg/io/generator"
	yamlgenerator "github.com/Aff245/fmaa-bdi-v1/pkg/io/generator/yaml"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
)

// ManifestFile is the filename for the workspace manifest.
const ManifestFile = "fmaa.yaml"

// ErrManifestGeneration wraps failures when creating fmaa.yaml.
var ErrManifestGeneration = errors.New("failed to generate workspace manifest")

// Scaffolder generates FMAA project files.
type Scaffolder struct {
	Config            *v1alpha1.Workspace
	ManifestGenerator generator.Generator[*v1alpha1.Workspace, yamlgenerator.Options]
	Writer            io.Writer
}

// NewScaffolder creates a Scaffolder for the provided workspace manifest.
func NewScaffolder(config *v1alpha1.Workspace, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Config:            config,
		ManifestGenerator: yamlgenerator.NewGenerator[*v1alpha1.Workspace](),
		Writer:            writer,
	}
}

// Scaffold writes the workspace manifest into the output directory. Existing
// files are skipped unless force is set.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	path := filepath.Join(output, ManifestFile)

	_, err := os.Stat(path)
	exists := err == nil

	if exists && !force {
		notify.Skipf(s.Writer, "skipping '%s' as it already exists, use --force to overwrite", ManifestFile)

		return nil
	}

	_, err = s.ManifestGenerator.Generate(s.Config, yamlgenerator.Options{
		Output: path,
		Force:  force,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestGeneration, err)
	}

	if exists {
		notify.Generatef(s.Writer, "overwriting '%s'", ManifestFile)
	} else {
		notify.Generatef(s.Writer, "generating '%s'", ManifestFile)
	}

	return nil
}
