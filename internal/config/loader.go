package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/pickctl"
	projectConfigDir = ".pickctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the pickctl configuration by layering default, user, and
// project settings. Both files are optional.
func LoadConfig() (PickctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return PickctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return PickctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PickctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (PickctlConfig, error) {
	var config PickctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PickctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PickctlConfig{}, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return config, nil
}

// mergeConfigs overlays the non-zero fields of overlay onto base.
func mergeConfigs(base, overlay PickctlConfig) PickctlConfig {
	merged := base

	if overlay.Menu.MaxColumnWidth != 0 {
		merged.Menu.MaxColumnWidth = overlay.Menu.MaxColumnWidth
	}
	if overlay.Menu.Columns != 0 {
		merged.Menu.Columns = overlay.Menu.Columns
	}
	if overlay.Menu.HighlightCurrent != nil {
		merged.Menu.HighlightCurrent = overlay.Menu.HighlightCurrent
	}

	if overlay.Kubernetes.Kubeconfig != "" {
		merged.Kubernetes.Kubeconfig = overlay.Kubernetes.Kubeconfig
	}
	if overlay.Terraform.Dir != "" {
		merged.Terraform.Dir = overlay.Terraform.Dir
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}
