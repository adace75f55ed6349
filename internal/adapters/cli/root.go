package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colonia",
		Short: "Colonia CLI - Run and inspect a colony economy simulation",
		Long: `Colonia CLI manages a persistent colony simulation save.

Commands operate on the current session: select a colony and a unit first,
then issue orders. Unit orders are only accepted for units the session
player owns.

Examples:
  colonia init --player Aurora --colony Jamestown
  colonia select colony <colony-id>
  colonia select unit <unit-id>
  colonia unit assign --building farm
  colonia unit withdraw
  colonia building upgrade blacksmithHut
  colonia colony status
  colonia run --turns 10`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewSelectCommand())
	rootCmd.AddCommand(NewUnitCommand())
	rootCmd.AddCommand(NewBuildingCommand())
	rootCmd.AddCommand(NewColonyCommand())
	rootCmd.AddCommand(NewRunCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
