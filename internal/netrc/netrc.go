package netrc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EarthdataHost is the Earthdata Login (URS) machine name that data-access
// tools look up in the netrc file.
const EarthdataHost = "urs.earthdata.nasa.gov"

// fileName is the conventional netrc file name in the user's home directory
const fileName = ".netrc"

// ErrExists is returned when the netrc file is already present. The tool
// never overwrites an existing file.
var ErrExists = errors.New("netrc file already exists")

// Entry is a single netrc machine entry.
type Entry struct {
	Machine  string
	Login    string
	Password string
}

// Line renders the entry as a single netrc line with a trailing newline.
// Login and password are written verbatim; netrc has no escaping convention,
// so values containing whitespace will corrupt the field structure.
func (e Entry) Line() string {
	return fmt.Sprintf("machine %s login %s password %s\n", e.Machine, e.Login, e.Password)
}

// ResolvePath returns the netrc file location using the following precedence:
//  1. The explicit override (--netrc flag), if non-empty
//  2. The NETRC environment variable
//  3. ~/.netrc under the user's home directory
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv("NETRC"); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, fileName), nil
}

// Write creates the netrc file at path with the entry as its complete
// content. The create is exclusive: if the file already exists the write
// fails with ErrExists and the existing file is untouched.
func Write(path string, entry Entry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.WriteString(entry.Line()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Restrict sets the file mode to owner read/write only. Applied
// unconditionally after a write so the final mode does not depend on the
// process umask.
func Restrict(path string) error {
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to restrict permissions on %s: %w", path, err)
	}
	return nil
}

// Info describes the state of a netrc file on disk.
type Info struct {
	Path    string
	Exists  bool
	Mode    os.FileMode
	Entries []Entry
}

// Loose reports whether the file mode grants any group or other access.
func (i Info) Loose() bool {
	return i.Exists && i.Mode.Perm()&0077 != 0
}

// Lookup returns the entry for the given machine name, if present.
func (i Info) Lookup(machine string) (Entry, bool) {
	for _, e := range i.Entries {
		if e.Machine == machine {
			return e, true
		}
	}
	return Entry{}, false
}

// Stat reads the netrc file at path and reports its existence, mode, and
// machine entries. A missing file is not an error.
func Stat(path string) (Info, error) {
	info := Info{Path: path}

	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("cannot access %s: %w", path, err)
	}
	info.Exists = true
	info.Mode = fi.Mode()

	data, err := os.ReadFile(path)
	if err != nil {
		return info, fmt.Errorf("cannot read %s: %w", path, err)
	}
	info.Entries = Parse(data)
	return info, nil
}

// Parse scans netrc data into machine entries. The netrc token stream is
// free-form across lines; "default" entries are reported with the machine
// name "default". Macro definitions (macdef) run to the next blank line and
// are skipped.
func Parse(data []byte) []Entry {
	var entries []Entry
	var current *Entry
	inMacdef := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if inMacdef {
			if strings.TrimSpace(line) == "" {
				inMacdef = false
			}
			continue
		}

		tokens := strings.Fields(line)
		for i := 0; i < len(tokens); i++ {
			switch tokens[i] {
			case "machine":
				if i+1 >= len(tokens) {
					continue
				}
				i++
				entries = append(entries, Entry{Machine: tokens[i]})
				current = &entries[len(entries)-1]
			case "default":
				entries = append(entries, Entry{Machine: "default"})
				current = &entries[len(entries)-1]
			case "login":
				if i+1 < len(tokens) && current != nil {
					i++
					current.Login = tokens[i]
				}
			case "password":
				if i+1 < len(tokens) && current != nil {
					i++
					current.Password = tokens[i]
				}
			case "account":
				// recognized netrc keyword, value not used here
				i++
			case "macdef":
				inMacdef = true
				i = len(tokens)
			}
		}
	}
	return entries
}
