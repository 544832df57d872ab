package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"pickctl/internal/config"
	"pickctl/internal/menu"
	"pickctl/pkg/logging"
)

// Persistent flags shared by all menu commands.
var (
	flagTitle       string
	flagColumns     int
	flagMaxColWidth int
	flagCopy        bool
	flagVerbose     bool
)

var (
	cfg       config.PickctlConfig
	cfgLoaded bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pickctl",
	Short: "Pick kube contexts, AWS profiles, and terraform workspaces from a grid menu",
	Long: `pickctl shows a keyboard-navigable grid menu on the terminal and prints
the entry you confirm, keeping stdout clean for shell substitution:

    export AWS_PROFILE=$(pickctl profile)
    kubectl --context $(pickctl context) get pods

The menu itself draws on stderr. Cancelling (esc/q/ctrl+c) prints nothing
and exits with status 130.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid constraints, cancelled menus)
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

// initRuntime loads the layered config and wires logging before any
// subcommand runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg = loaded
	cfgLoaded = true

	level := logging.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)
	return nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). A cancelled menu exits with
// 130 (the shell convention for SIGINT) so that command substitutions can
// tell "picked nothing" from "picked the first entry".
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "pickctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		if errors.Is(err, menu.ErrCancelled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newContextCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newWorkspaceCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "menu title (overrides the per-command default)")
	rootCmd.PersistentFlags().IntVar(&flagColumns, "columns", 0, "number of menu columns (0 = fit the terminal width)")
	rootCmd.PersistentFlags().IntVar(&flagMaxColWidth, "max-col-width", 0, "maximum display width of a menu column")
	rootCmd.PersistentFlags().BoolVar(&flagCopy, "copy", false, "also copy the selection to the clipboard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
