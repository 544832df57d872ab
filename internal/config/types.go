package config

// PickctlConfig is the top-level configuration structure for pickctl.
type PickctlConfig struct {
	Menu       MenuSettings      `yaml:"menu"`
	Kubernetes KubeSettings      `yaml:"kubernetes"`
	Terraform  TerraformSettings `yaml:"terraform"`
	LogLevel   string            `yaml:"logLevel,omitempty"` // "debug", "info", "warn", "error"
}

// MenuSettings holds the grid menu defaults; per-invocation flags override
// them.
type MenuSettings struct {
	// MaxColumnWidth caps the display width of a menu column.
	MaxColumnWidth int `yaml:"maxColumnWidth,omitempty"`
	// Columns fixes the column count; 0 sizes to the terminal width.
	Columns int `yaml:"columns,omitempty"`
	// HighlightCurrent marks the currently active entry (context,
	// profile, workspace) with a distinct style. A pointer so that an
	// overlay file can switch it off explicitly.
	HighlightCurrent *bool `yaml:"highlightCurrent,omitempty"`
}

// KubeSettings configures the kubeconfig context provider.
type KubeSettings struct {
	// Kubeconfig is an explicit kubeconfig path; empty falls back to
	// KUBECONFIG / ~/.kube/config.
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
}

// TerraformSettings configures the terraform workspace provider.
type TerraformSettings struct {
	// Dir is the terraform working directory; empty means the current
	// directory.
	Dir string `yaml:"dir,omitempty"`
}
