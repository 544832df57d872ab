package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pickctl/internal/source"
)

var (
	contextKubeconfig string
	contextSwitch     bool
)

func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "context",
		Aliases: []string{"ctx"},
		Short:   "Pick a kubeconfig context",
		Long: `Lists the contexts defined in the kubeconfig, opens the grid menu with
the active context highlighted, and prints the confirmed name. With
--switch the selection is also written back as current-context.`,
		Args: cobra.NoArgs,
		RunE: runContext,
	}
	cmd.Flags().StringVar(&contextKubeconfig, "kubeconfig", "", "path to the kubeconfig file")
	cmd.Flags().BoolVar(&contextSwitch, "switch", false, "set the selection as current-context")
	return cmd
}

func runContext(cmd *cobra.Command, args []string) error {
	path := contextKubeconfig
	if path == "" {
		path = currentConfig().Kubernetes.Kubeconfig
	}

	names, current, err := source.KubeContexts(path)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no contexts found in kubeconfig")
	}

	idx, err := choose(names, "Kubernetes contexts", current)
	if err != nil {
		return err
	}
	name := names[idx]

	if contextSwitch {
		if err := source.SwitchKubeContext(path, name); err != nil {
			return err
		}
	}
	return emit(cmd, name)
}
