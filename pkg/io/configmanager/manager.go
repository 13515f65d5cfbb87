package configmanager

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/envvar"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. FMAA_SPEC_ROOT overrides spec.root).
const EnvPrefix = "FMAA"

// ConfigFileName is the manifest file name looked up in the working
// directory, without extension.
const ConfigFileName = "fmaa"

// LoadOptions configures how the workspace manifest is loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses all loading notifications when true.
	Silent bool
	// IgnoreConfigFile skips reading the on-disk manifest when true
	// (defaults, environment, and flags only).
	IgnoreConfigFile bool
}

// ConfigManager loads the workspace manifest with layered precedence:
// built-in defaults < fmaa.yaml < FMAA_* environment variables < flags.
type ConfigManager struct {
	Viper           *viper.Viper
	Config          *v1alpha1.Workspace
	Writer          io.Writer
	command         *cobra.Command
	configLoaded    bool
	configFileFound bool
}

// NewConfigManager creates a configuration manager with Viper initialized for
// manifest lookup in the working directory and FMAA_* environment handling.
func NewConfigManager(writer io.Writer) *ConfigManager {
	viperInstance := viper.New()
	viperInstance.SetConfigName(ConfigFileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return &ConfigManager{
		Viper:  viperInstance,
		Config: v1alpha1.NewWorkspace(),
		Writer: writer,
	}
}

// NewCommandConfigManager constructs a ConfigManager bound to the provided
// Cobra command so changed flags can override manifest values. Output goes to
// the command's standard output writer.
func NewCommandConfigManager(cmd *cobra.Command) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout())
	manager.command = cmd

	return manager
}

// Load loads the workspace manifest with the specified options. It returns
// the loaded manifest, either freshly loaded or previously cached.
func (m *ConfigManager) Load(opts LoadOptions) (*v1alpha1.Workspace, error) {
	if !opts.Silent {
		notify.Titlef(m.Writer, "⏳", "Load config...")
	}

	if m.configLoaded {
		if !opts.Silent {
			notify.Successf(m.Writer, "config already loaded, reusing existing config")
		}

		return m.Config, nil
	}

	if !opts.IgnoreConfigFile {
		err := m.readConfig(opts.Silent)
		if err != nil {
			return nil, err
		}
	}

	err := m.unmarshalOverDefaults()
	if err != nil {
		return nil, err
	}

	m.applyFlagOverrides()
	m.expandEnvPlaceholders()

	err = m.Config.Validate()
	if err != nil {
		if !opts.Silent {
			notify.Errorf(m.Writer, "%v", err)
		}

		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !opts.Silent {
		notify.WriteMessage(notify.Message{
			Type:    notify.SuccessType,
			Content: "config loaded",
			Timer:   opts.Timer,
			Writer:  m.Writer,
		})
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig(silent bool) error {
	if path := m.manifestFlagPath(); path != "" {
		// An explicitly named manifest must exist; no silent fallback to
		// defaults.
		m.Viper.SetConfigFile(path)
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		m.configFileFound = false
		if !silent {
			notify.Activityf(m.Writer, "using default config")
		}

		return nil
	}

	m.configFileFound = true
	if !silent {
		notify.Activityf(m.Writer, "'%s' found", m.Viper.ConfigFileUsed())
	}

	return nil
}

// unmarshalOverDefaults starts from a deep copy of the built-in defaults and
// layers the manifest file and environment on top. A manifest file replaces
// the default step list wholesale; merging per-step would produce surprising
// hybrids.
func (m *ConfigManager) unmarshalOverDefaults() error {
	defaults, err := v1alpha1.DefaultWorkspace()
	if err != nil {
		return fmt.Errorf("failed to build default config: %w", err)
	}

	err = copier.CopyWithOption(m.Config, defaults, copier.Option{DeepCopy: true})
	if err != nil {
		return fmt.Errorf("failed to copy default config: %w", err)
	}

	if !m.configFileFound {
		// Environment variables can still override scalar fields.
		root := m.Viper.GetString("spec.root")
		if root != "" {
			m.Config.Spec.Root = root
		}

		return nil
	}

	// Reset TypeMeta so validation catches wrong apiVersion/kind values in
	// the manifest file instead of masking them with defaults.
	m.Config.TypeMeta = v1alpha1.TypeMeta{}
	m.Config.Spec.Steps = nil

	// Unknown manifest keys fail loudly, matching the strict YAML decoder.
	err = m.Viper.Unmarshal(m.Config, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if m.Config.Spec.Steps == nil {
		m.Config.Spec.Steps = defaults.Spec.Steps
	}

	return nil
}

// expandEnvPlaceholders resolves ${VAR} and ${VAR:-default} placeholders in
// path values. File content is deliberately left untouched so provisioned
// shell scripts keep their own variable references.
func (m *ConfigManager) expandEnvPlaceholders() {
	m.Config.Spec.Root = envvar.Expand(m.Config.Spec.Root)

	for stepIndex := range m.Config.Spec.Steps {
		step := &m.Config.Spec.Steps[stepIndex]

		for dirIndex := range step.Directories {
			step.Directories[dirIndex] = envvar.Expand(step.Directories[dirIndex])
		}

		if step.File != nil {
			step.File.Path = envvar.Expand(step.File.Path)
		}
	}
}

// manifestFlagPath returns the value of a changed --manifest flag, or "".
func (m *ConfigManager) manifestFlagPath() string {
	if m.command == nil {
		return ""
	}

	var path string

	m.command.Flags().Visit(func(flag *pflag.Flag) {
		if flag.Name == "manifest" {
			path = flag.Value.String()
		}
	})

	return path
}

// applyFlagOverrides lets changed CLI flags win over file and environment.
func (m *ConfigManager) applyFlagOverrides() {
	if m.command == nil {
		return
	}

	m.command.Flags().Visit(func(flag *pflag.Flag) {
		if flag.Name == "root" && flag.Value.String() != "" {
			m.Config.Spec.Root = flag.Value.String()
		}
	})
}
