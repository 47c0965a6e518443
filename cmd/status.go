package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sciencecore/earthdata-auth/internal/netrc"
)

var statusOutputJSON bool

// statusReport is the machine-readable form of the netrc state.
type statusReport struct {
	Path         string `json:"path"`
	Exists       bool   `json:"exists"`
	Mode         string `json:"mode,omitempty"`
	HasEarthdata bool   `json:"hasEarthdata"`
	Login        string `json:"login,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current netrc credential state",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := netrc.ResolvePath(netrcPath)
		if err != nil {
			return err
		}

		info, err := netrc.Stat(path)
		if err != nil {
			return err
		}

		entry, hasEntry := info.Lookup(netrc.EarthdataHost)

		if statusOutputJSON {
			report := statusReport{
				Path:         info.Path,
				Exists:       info.Exists,
				HasEarthdata: hasEntry,
				Login:        entry.Login,
			}
			if info.Exists {
				report.Mode = fmt.Sprintf("%04o", info.Mode.Perm())
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		}

		if !info.Exists {
			fmt.Printf("No netrc file at %s\n", path)
			fmt.Println("Run 'earthdata-auth setup' to create one.")
			return nil
		}

		fmt.Printf("Netrc file: %s (mode %04o)\n", info.Path, info.Mode.Perm())
		if info.Loose() {
			fmt.Printf("%s file is readable by group/other; run: chmod 600 %s\n", warnStyle.Render("Warning:"), info.Path)
		}

		if hasEntry {
			fmt.Printf("Earthdata entry: %s\n", netrc.EarthdataHost)
			fmt.Printf("  Login: %s\n", entry.Login)
			fmt.Printf("  Password: (hidden)\n")
		} else {
			fmt.Printf("No entry for %s. Run 'earthdata-auth setup' after removing the file.\n", netrc.EarthdataHost)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusOutputJSON, "json", false, "Output status as JSON")

	rootCmd.AddCommand(statusCmd)
}
