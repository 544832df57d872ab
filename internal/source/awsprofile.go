package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pickctl/pkg/logging"
)

const subsystemAWS = "source.aws"

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// awsFilePaths resolves the shared config and credentials files, honoring
// the same environment overrides the AWS CLI does.
func awsFilePaths() (configPath, credentialsPath string, err error) {
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		configPath = p
	}
	if p := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); p != "" {
		credentialsPath = p
	}
	if configPath != "" && credentialsPath != "" {
		return configPath, credentialsPath, nil
	}

	home, err := osUserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("resolving home directory: %w", err)
	}
	if configPath == "" {
		configPath = filepath.Join(home, ".aws", "config")
	}
	if credentialsPath == "" {
		credentialsPath = filepath.Join(home, ".aws", "credentials")
	}
	return configPath, credentialsPath, nil
}

// AWSProfiles lists the profile names defined in the AWS shared config and
// credentials files, sorted and de-duplicated, plus the index of the profile
// named by AWS_PROFILE (or "default"), -1 when that profile is not defined.
// Only section headers are read; keys and values are never inspected.
func AWSProfiles() ([]string, int, error) {
	configPath, credentialsPath, err := awsFilePaths()
	if err != nil {
		return nil, -1, err
	}

	seen := make(map[string]bool)
	// Config file headers are "[profile name]" (or "[default]"),
	// credentials file headers are plain "[name]".
	if err := scanProfileHeaders(configPath, "profile ", seen); err != nil {
		return nil, -1, err
	}
	if err := scanProfileHeaders(credentialsPath, "", seen); err != nil {
		return nil, -1, err
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	want := os.Getenv("AWS_PROFILE")
	if want == "" {
		want = "default"
	}
	current := -1
	for i, name := range names {
		if name == want {
			current = i
			break
		}
	}
	logging.Debug(subsystemAWS, "found %d profiles in %s and %s", len(names), configPath, credentialsPath)
	return names, current, nil
}

// scanProfileHeaders collects section names from one ini-style file into
// seen. A missing file is not an error; either of the two AWS files may be
// absent.
func scanProfileHeaders(path, sectionPrefix string, seen map[string]bool) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		name := strings.TrimSpace(line[1 : len(line)-1])
		if sectionPrefix != "" && name != "default" {
			if !strings.HasPrefix(name, sectionPrefix) {
				// Not a profile section (e.g. [sso-session x]).
				continue
			}
			name = strings.TrimSpace(strings.TrimPrefix(name, sectionPrefix))
		}
		if name != "" {
			seen[name] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
