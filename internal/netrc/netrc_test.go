package netrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryLine(t *testing.T) {
	entry := Entry{Machine: EarthdataHost, Login: "alice", Password: "s3cr3t"}
	assert.Equal(t, "machine urs.earthdata.nasa.gov login alice password s3cr3t\n", entry.Line())
}

func TestEntryLineVerbatim(t *testing.T) {
	// Values are not escaped, even when they break the field structure.
	entry := Entry{Machine: EarthdataHost, Login: "alice", Password: "pass word"}
	assert.Equal(t, "machine urs.earthdata.nasa.gov login alice password pass word\n", entry.Line())
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		override string
		env      string
		expected string
	}{
		{
			name:     "Flag override wins",
			override: "/tmp/custom-netrc",
			env:      "/tmp/env-netrc",
			expected: "/tmp/custom-netrc",
		},
		{
			name:     "NETRC env when no override",
			env:      "/tmp/env-netrc",
			expected: "/tmp/env-netrc",
		},
		{
			name:     "Home directory default",
			expected: filepath.Join(home, ".netrc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NETRC", tt.env)

			path, err := ResolvePath(tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".netrc")
	entry := Entry{Machine: EarthdataHost, Login: "alice", Password: "s3cr3t"}

	require.NoError(t, Write(path, entry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "machine urs.earthdata.nasa.gov login alice password s3cr3t\n", string(data))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestWriteRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".netrc")
	require.NoError(t, os.WriteFile(path, []byte("arbitrary content\n"), 0644))

	err := Write(path, Entry{Machine: EarthdataHost, Login: "bob", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrExists)
	assert.Contains(t, err.Error(), path)

	// The pre-existing file is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "arbitrary content\n", string(data))
}

func TestRestrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".netrc")
	require.NoError(t, os.WriteFile(path, []byte("machine example.org login a password b\n"), 0644))

	require.NoError(t, Restrict(path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestStat(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file", func(t *testing.T) {
		info, err := Stat(filepath.Join(dir, "absent"))
		require.NoError(t, err)
		assert.False(t, info.Exists)
		assert.Empty(t, info.Entries)
	})

	t.Run("Existing file", func(t *testing.T) {
		path := filepath.Join(dir, ".netrc")
		content := "machine urs.earthdata.nasa.gov login alice password s3cr3t\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		info, err := Stat(path)
		require.NoError(t, err)
		assert.True(t, info.Exists)
		assert.False(t, info.Loose())

		entry, ok := info.Lookup(EarthdataHost)
		require.True(t, ok)
		assert.Equal(t, "alice", entry.Login)
		assert.Equal(t, "s3cr3t", entry.Password)

		_, ok = info.Lookup("example.org")
		assert.False(t, ok)
	})

	t.Run("Loose permissions", func(t *testing.T) {
		path := filepath.Join(dir, "loose")
		require.NoError(t, os.WriteFile(path, []byte("machine example.org login a password b\n"), 0644))

		info, err := Stat(path)
		require.NoError(t, err)
		assert.True(t, info.Loose())
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected []Entry
	}{
		{
			name:     "Single entry",
			data:     "machine urs.earthdata.nasa.gov login alice password s3cr3t\n",
			expected: []Entry{{Machine: "urs.earthdata.nasa.gov", Login: "alice", Password: "s3cr3t"}},
		},
		{
			name: "Multiple machines",
			data: "machine one.example.org login a password b\nmachine two.example.org login c password d\n",
			expected: []Entry{
				{Machine: "one.example.org", Login: "a", Password: "b"},
				{Machine: "two.example.org", Login: "c", Password: "d"},
			},
		},
		{
			name:     "Entry split across lines",
			data:     "machine example.org\n  login carol\n  password xyzzy\n",
			expected: []Entry{{Machine: "example.org", Login: "carol", Password: "xyzzy"}},
		},
		{
			name:     "Default entry",
			data:     "default login anonymous password user@site\n",
			expected: []Entry{{Machine: "default", Login: "anonymous", Password: "user@site"}},
		},
		{
			name: "Macdef body skipped",
			data: "machine example.org login a password b\nmacdef init\ncd pub\nmget *\n\nmachine other.org login c password d\n",
			expected: []Entry{
				{Machine: "example.org", Login: "a", Password: "b"},
				{Machine: "other.org", Login: "c", Password: "d"},
			},
		},
		{
			name:     "Empty input",
			data:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse([]byte(tt.data)))
		})
	}
}
