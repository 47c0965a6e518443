package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sciencecore/earthdata-auth/internal/netrc"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the netrc credential file",
	Long: `Delete the netrc file created by 'earthdata-auth setup'.

If the file carries entries for machines other than the Earthdata host,
removal is refused so credentials this tool did not write are not lost.
Use --force to delete the file anyway.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := netrc.ResolvePath(netrcPath)
		if err != nil {
			return err
		}

		info, err := netrc.Stat(path)
		if err != nil {
			return err
		}
		if !info.Exists {
			fmt.Printf("No netrc file at %s\n", path)
			return nil
		}

		if !removeForce {
			var foreign []string
			for _, entry := range info.Entries {
				if entry.Machine != netrc.EarthdataHost {
					foreign = append(foreign, entry.Machine)
				}
			}
			if len(foreign) > 0 {
				return fmt.Errorf("%s contains entries for other machines (%s); edit it manually or use --force",
					path, strings.Join(foreign, ", "))
			}
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		fmt.Printf("Removed %s\n", path)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Remove the file even if it has entries for other machines")

	rootCmd.AddCommand(removeCmd)
}
