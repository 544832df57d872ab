package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pickctl/internal/source"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Pick an AWS profile",
		Long: `Lists the profile names defined in the AWS shared config and credentials
files and prints the confirmed one. Only section headers are read; pickctl
never touches keys or tokens. Typical use:

    export AWS_PROFILE=$(pickctl profile)`,
		Args: cobra.NoArgs,
		RunE: runProfile,
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
	names, current, err := source.AWSProfiles()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no AWS profiles found")
	}

	idx, err := choose(names, "AWS profiles", current)
	if err != nil {
		return err
	}
	return emit(cmd, names[idx])
}
