package config

// GetDefaultConfig returns the built-in configuration that user and project
// files are layered on top of.
func GetDefaultConfig() PickctlConfig {
	highlight := true
	return PickctlConfig{
		Menu: MenuSettings{
			MaxColumnWidth:   20,
			HighlightCurrent: &highlight,
		},
		LogLevel: "info",
	}
}
