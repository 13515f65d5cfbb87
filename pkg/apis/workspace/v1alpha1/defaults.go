package v1alpha1

import "fmt"

// Built-in manifest constants.
const (
	// DefaultRoot is the workspace root the built-in manifest provisions.
	DefaultRoot = "~/fmaa-bdi-enterprise"

	// AgentConfigPath is where the agent configuration lands inside the root.
	AgentConfigPath = "android-center/config.yaml"

	// KeepAlivePath is where the wake-lock helper script lands inside the root.
	KeepAlivePath = "android-center/keep_alive.sh"

	// TermuxPropertiesPath is the home-anchored terminal emulator configuration.
	TermuxPropertiesPath = "~/.termux/termux.properties"
)

// termuxProperties configures the extra key rows and silences the bell.
const termuxProperties = `extra-keys = [['ESC','/','-','HOME','UP','END'],['TAB','CTRL','ALT','LEFT','DOWN','RIGHT']]
bell-character = ignore
`

// keepAliveScript grabs a Termux wake lock and idles so Android keeps the
// session alive.
const keepAliveScript = `#!/data/data/com.termux/files/usr/bin/sh
termux-wake-lock
while true; do sleep 3600; done
`

// defaultPackages are the OS packages the workspace needs. Order is
// preserved for log readability only.
//
//nolint:gochecknoglobals
var defaultPackages = []string{"python", "git", "curl", "wget", "openssh", "termux-api"}

// projectDirectories is the project tree under the workspace root. The
// agents and revenue-engine directories are placeholders for programs the
// provisioner does not install.
//
//nolint:gochecknoglobals
var projectDirectories = []string{
	"android-center",
	"cloud-execution",
	"agents",
	"revenue-engine",
	"monitoring",
}

// DefaultWorkspace returns the built-in manifest: the desired state of a
// fresh FMAA development environment on a Termux host.
//
// Step order matters: the project tree is created before any file is
// written into it. The package step is optional so provisioning the
// filesystem still completes on hosts without the Termux package manager.
func DefaultWorkspace() (*Workspace, error) {
	agentConfig, err := DefaultAgentConfig().Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render default agent config: %w", err)
	}

	workspace := NewWorkspace()
	workspace.Spec = Spec{
		Root: DefaultRoot,
		Steps: []Step{
			NewPackagesStep("base-packages", true, defaultPackages...),
			NewDirectoriesStep("project-tree", projectDirectories...),
			NewFileStep("agent-config", AgentConfigPath, agentConfig, ""),
			NewFileStep("keep-alive", KeepAlivePath, keepAliveScript, "0755"),
			{
				Name:     "termux-properties",
				Optional: true,
				File: &FileSpec{
					Path:    TermuxPropertiesPath,
					Content: termuxProperties,
				},
			},
		},
	}

	return workspace, nil
}
