package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"pickctl/internal/config"
	"pickctl/internal/menu"
	"pickctl/pkg/logging"
)

const subsystemCmd = "cmd"

// currentConfig returns the layered config, or the built-in defaults when a
// command is executed outside the root command (tests).
func currentConfig() config.PickctlConfig {
	if !cfgLoaded {
		return config.GetDefaultConfig()
	}
	return cfg
}

// menuOptions builds the menu sizing options from the config defaults with
// flag overrides, seeding the cursor on current when the caller knows one.
func menuOptions(current int) menu.Options {
	c := currentConfig()

	opts := menu.Options{
		MaxColumnWidth: c.Menu.MaxColumnWidth,
		Columns:        c.Menu.Columns,
	}
	if flagMaxColWidth != 0 {
		opts.MaxColumnWidth = flagMaxColWidth
	}
	if flagColumns != 0 {
		opts.Columns = flagColumns
	}
	if current >= 0 {
		opts.Initial = current
		if c.Menu.HighlightCurrent != nil {
			opts.HighlightCurrent = *c.Menu.HighlightCurrent
		}
	}
	return opts
}

// choose opens the grid menu over labels and returns the confirmed index.
// A single candidate is selected without opening the menu, so scripted use
// stays non-interactive whenever there is nothing to decide.
func choose(labels []string, title string, current int) (int, error) {
	if len(labels) == 0 {
		return -1, menu.ErrEmptyMenu
	}
	if len(labels) == 1 {
		logging.Debug(subsystemCmd, "single candidate %q, skipping menu", labels[0])
		return 0, nil
	}
	if flagTitle != "" {
		title = flagTitle
	}
	return menu.Open(labels, title, menuOptions(current))
}

// emit writes the selected value to stdout, optionally copying it to the
// clipboard first. Clipboard failures are logged, not fatal: the printed
// value is the contract.
func emit(cmd *cobra.Command, value string) error {
	if flagCopy {
		if err := clipboard.WriteAll(value); err != nil {
			logging.Warn(subsystemCmd, "could not copy %q to clipboard: %v", value, err)
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
