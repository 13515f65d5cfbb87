package v1alpha1

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AgentConfig is the typed model behind android-center/config.yaml. The BDI
// agent and revenue engine that read it are separate programs; the
// provisioner only lays the file down.
type AgentConfig struct {
	BDIAgent       BDIAgentConfig       `yaml:"bdi_agent"`
	CloudServices  CloudServicesConfig  `yaml:"cloud_services"`
	RevenueTargets RevenueTargetsConfig `yaml:"revenue_targets"`
}

// BDIAgentConfig identifies the agent instance.
type BDIAgentConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Mode    string `yaml:"mode"`
}

// CloudServicesConfig holds per-service connection placeholders.
type CloudServicesConfig struct {
	GitHub      GitHubServiceConfig      `yaml:"github"`
	Vercel      VercelServiceConfig      `yaml:"vercel"`
	Supabase    SupabaseServiceConfig    `yaml:"supabase"`
	HuggingFace HuggingFaceServiceConfig `yaml:"huggingface"`
}

// GitHubServiceConfig points at the GitHub repository driving workflows.
type GitHubServiceConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

// VercelServiceConfig names the Vercel project agents deploy to.
type VercelServiceConfig struct {
	Project string `yaml:"project"`
}

// SupabaseServiceConfig points at the Supabase instance.
type SupabaseServiceConfig struct {
	URL string `yaml:"url"`
}

// HuggingFaceServiceConfig points at the model hub.
type HuggingFaceServiceConfig struct {
	ModelHub string `yaml:"model_hub"`
}

// RevenueTargetsConfig holds the revenue optimization placeholders.
type RevenueTargetsConfig struct {
	MonthlyGoal          int    `yaml:"monthly_goal"`
	OptimizationInterval int    `yaml:"optimization_interval"`
	AnalyticsDepth       string `yaml:"analytics_depth"`
}

// DefaultAgentConfig returns the placeholder configuration the agent expects
// on first boot.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		BDIAgent: BDIAgentConfig{
			Name:    "FMAA-BDI-Master",
			Version: "1.0.0",
			Mode:    "autonomous",
		},
		CloudServices: CloudServicesConfig{
			GitHub: GitHubServiceConfig{
				Owner: "your-github-username",
				Repo:  "fmaa-bdi-enterprise",
			},
			Vercel: VercelServiceConfig{
				Project: "fmaa-api",
			},
			Supabase: SupabaseServiceConfig{
				URL: "https://your-project.supabase.co",
			},
			HuggingFace: HuggingFaceServiceConfig{
				ModelHub: "huggingface.co",
			},
		},
		RevenueTargets: RevenueTargetsConfig{
			MonthlyGoal:          50000,
			OptimizationInterval: 30,
			AnalyticsDepth:       "deep",
		},
	}
}

// Render marshals the configuration to the YAML written into the workspace.
func (c AgentConfig) Render() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal agent config: %w", err)
	}

	return string(out), nil
}
