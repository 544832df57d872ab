package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pickctl/pkg/logging"
)

const subsystemTF = "source.terraform"

const (
	tfStateDir         = "terraform.tfstate.d"
	tfEnvironmentFile  = ".terraform/environment"
	tfDefaultWorkspace = "default"
)

// TerraformWorkspaces lists the workspaces of the terraform working
// directory dir ("" means the current directory): the implicit default
// workspace plus one per state directory under terraform.tfstate.d. The
// second result is the index of the workspace recorded in
// .terraform/environment (the default workspace when that file is absent).
func TerraformWorkspaces(dir string) ([]string, int, error) {
	if dir == "" {
		dir = "."
	}

	seen := map[string]bool{tfDefaultWorkspace: true}
	entries, err := os.ReadDir(filepath.Join(dir, tfStateDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, -1, fmt.Errorf("reading %s: %w", tfStateDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			seen[entry.Name()] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	currentName := tfDefaultWorkspace
	if data, err := os.ReadFile(filepath.Join(dir, tfEnvironmentFile)); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			currentName = name
		}
	}
	current := -1
	for i, name := range names {
		if name == currentName {
			current = i
			break
		}
	}
	logging.Debug(subsystemTF, "found %d workspaces in %s, current %q", len(names), dir, currentName)
	return names, current, nil
}
