package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetfewer application
var rootCmd = &cobra.Command{
	Use:   "meetfewer",
	Short: "Timezone-aware meeting scheduling engine with an MCP interface",
	Long: `meetfewer is a meeting scheduling engine for AI assistants, exposed
over the Model Context Protocol (MCP).

It keeps an in-memory calendar of participants and meetings and provides
tools for conflict detection, timezone-aware optimal slot search,
workload balancing, meeting effectiveness scoring, and agenda
suggestions. Conflicts are always advisory: the engine reports them and
leaves the decision to the caller.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetfewer version %s\n" .Version}}`)

	// If no subcommand is provided, run the MCP server by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
