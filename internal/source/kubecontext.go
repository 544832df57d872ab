// Package source produces the ordered label lists shown in the grid menu:
// kubeconfig contexts, AWS profile names, and terraform workspaces. Each
// provider returns the names plus the index of the "current" entry (or -1),
// and never touches credentials or talks to a remote API.
package source

import (
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"

	"pickctl/pkg/logging"
)

const subsystemKube = "source.kube"

// kubePathOptions builds the kubeconfig access rules, honoring an explicit
// path over the usual KUBECONFIG/default resolution.
func kubePathOptions(explicitPath string) *clientcmd.PathOptions {
	po := clientcmd.NewDefaultPathOptions()
	if explicitPath != "" {
		po.LoadingRules.ExplicitPath = explicitPath
	}
	return po
}

// KubeContexts lists the context names in the kubeconfig, sorted, together
// with the index of the current context (-1 if unset or absent).
func KubeContexts(explicitPath string) ([]string, int, error) {
	cfg, err := kubePathOptions(explicitPath).GetStartingConfig()
	if err != nil {
		return nil, -1, fmt.Errorf("loading kubeconfig: %w", err)
	}

	names := make([]string, 0, len(cfg.Contexts))
	for name := range cfg.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	current := -1
	for i, name := range names {
		if name == cfg.CurrentContext {
			current = i
			break
		}
	}
	logging.Debug(subsystemKube, "found %d contexts, current %q", len(names), cfg.CurrentContext)
	return names, current, nil
}

// SwitchKubeContext rewrites current-context in the kubeconfig. The name
// must be one of the contexts already defined there.
func SwitchKubeContext(explicitPath, name string) error {
	po := kubePathOptions(explicitPath)
	cfg, err := po.GetStartingConfig()
	if err != nil {
		return fmt.Errorf("loading kubeconfig: %w", err)
	}
	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found in kubeconfig", name)
	}
	cfg.CurrentContext = name
	if err := clientcmd.ModifyConfig(po, *cfg, true); err != nil {
		return fmt.Errorf("writing kubeconfig: %w", err)
	}
	logging.Info(subsystemKube, "switched current-context to %q", name)
	return nil
}
