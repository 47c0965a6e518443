package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	netrcPath string

	version = "1.0.0" // This will be set during build
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "earthdata-auth",
	Short: "Provision NASA Earthdata Login credentials",
	Long: `earthdata-auth writes NASA Earthdata Login credentials to your netrc file
so that data-access tools (curl, wget, python clients) can authenticate
against urs.earthdata.nasa.gov automatically.

Running earthdata-auth without a subcommand performs the interactive setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&netrcPath, "netrc", "", "Path to the netrc file (default: $NETRC or ~/.netrc)")

	// Add version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of earthdata-auth",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("earthdata-auth v%s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
