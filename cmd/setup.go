package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sciencecore/earthdata-auth/internal/netrc"
	"github.com/sciencecore/earthdata-auth/internal/prompt"
)

var (
	setupUsername      string
	setupPasswordStdin bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write Earthdata credentials to the netrc file",
	Long: `Prompt for NASA Earthdata Login credentials and write them to the netrc
file. The file is created with owner-only permissions. An existing netrc
file is never overwritten: back it up and delete it first.

Examples:
  # Interactive setup
  earthdata-auth setup

  # Non-interactive setup (CI)
  echo "$EARTHDATA_PASSWORD" | earthdata-auth setup --username alice --password-stdin

  # Write to an alternate location
  earthdata-auth setup --netrc /tmp/netrc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd)
	},
}

func runSetup(cmd *cobra.Command) error {
	path, err := netrc.ResolvePath(netrcPath)
	if err != nil {
		return err
	}

	// The precondition is checked before anything is read from the
	// terminal: an existing file means nothing is prompted and nothing is
	// written.
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("\n%s %s exists already (this tool won't overwrite).\n\n", warnStyle.Render("Warning:"), path)
		fmt.Printf("         Back up %s first & delete it to avoid losing credentials.\n", path)
		return fmt.Errorf("%w: %s", netrc.ErrExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	username, password, err := readCredentials(cmd)
	if err != nil {
		return err
	}

	entry := netrc.Entry{
		Machine:  netrc.EarthdataHost,
		Login:    username,
		Password: password,
	}

	fmt.Printf("\nWriting Earthdata credentials to %s\n", path)
	if err := netrc.Write(path, entry); err != nil {
		return err
	}

	fmt.Printf("Modifying permissions on %s\n\n", path)
	if err := netrc.Restrict(path); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("Earthdata credentials saved"))
	return nil
}

// readCredentials collects the username and password, either from the
// non-interactive flags or by prompting.
func readCredentials(cmd *cobra.Command) (string, string, error) {
	if setupPasswordStdin {
		if setupUsername == "" {
			return "", "", fmt.Errorf("--username is required with --password-stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password := strings.TrimSuffix(string(data), "\n")
		password = strings.TrimSuffix(password, "\r")
		return setupUsername, password, nil
	}

	p := prompt.New(cmd.InOrStdin(), os.Stdout)

	username := setupUsername
	if username == "" {
		var err error
		username, err = p.Line("\nNASA Earthdata login:    ")
		if err != nil {
			return "", "", err
		}
	}

	password, err := p.Secret("\nNASA Earthdata password: ")
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

func init() {
	setupCmd.Flags().StringVar(&setupUsername, "username", "", "Earthdata Login username (skips the prompt)")
	setupCmd.Flags().BoolVar(&setupPasswordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")

	// Also add flags to the root command for `earthdata-auth --username ...`
	rootCmd.Flags().StringVar(&setupUsername, "username", "", "Earthdata Login username (skips the prompt)")
	rootCmd.Flags().BoolVar(&setupPasswordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")

	rootCmd.AddCommand(setupCmd)
}
