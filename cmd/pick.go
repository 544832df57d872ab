package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pickIndex bool

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [label...]",
		Short: "Pick one entry from arguments or stdin lines",
		Long: `Shows the grid menu over the given labels, or over the lines read from
stdin when no arguments are given, and prints the confirmed entry:

    pickctl pick dev staging prod
    ls environments/ | pickctl pick --title "Environment"`,
		RunE: runPick,
	}
	cmd.Flags().BoolVar(&pickIndex, "index", false, "print the selected 0-based index instead of the label")
	return cmd
}

// gatherPickLabels returns the menu labels: the positional arguments, or the
// non-empty stdin lines when there are none.
func gatherPickLabels(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var labels []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading labels from stdin: %w", err)
	}
	return labels, nil
}

func runPick(cmd *cobra.Command, args []string) error {
	labels, err := gatherPickLabels(cmd, args)
	if err != nil {
		return err
	}

	idx, err := choose(labels, "Pick an option", -1)
	if err != nil {
		return err
	}
	if pickIndex {
		return emit(cmd, fmt.Sprintf("%d", idx))
	}
	return emit(cmd, labels[idx])
}
