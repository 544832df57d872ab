package cmd

import (
	"github.com/spf13/cobra"

	"pickctl/internal/source"
)

var workspaceDir string

func newWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Pick a terraform workspace",
		Long: `Lists the workspaces of a terraform working directory (the implicit
default workspace plus the state directories under terraform.tfstate.d)
and prints the confirmed name. The terraform binary is never invoked.`,
		Args: cobra.NoArgs,
		RunE: runWorkspace,
	}
	cmd.Flags().StringVar(&workspaceDir, "chdir", "", "terraform working directory")
	return cmd
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	dir := workspaceDir
	if dir == "" {
		dir = currentConfig().Terraform.Dir
	}

	names, current, err := source.TerraformWorkspaces(dir)
	if err != nil {
		return err
	}

	idx, err := choose(names, "Terraform workspaces", current)
	if err != nil {
		return err
	}
	return emit(cmd, names[idx])
}
