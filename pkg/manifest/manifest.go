// Package manifest reads and appends the list of created repository names.
//
// The manifest is a plain text file with one repository name per line. ghseed
// only ever appends to it; readers skip blank lines and lines starting with #.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gofrs/flock"
)

// DefaultPath is the manifest file name, relative to the working directory
const DefaultPath = "include-repos.txt"

// Manifest is an append-only file of repository names
type Manifest struct {
	Path string
}

// New returns a manifest stored at path
func New(path string) *Manifest {
	if path == "" {
		path = DefaultPath
	}
	return &Manifest{Path: path}
}

// Append writes name followed by a newline to the end of the manifest,
// creating the file if needed. Concurrent writers are serialized through an
// advisory lock held on the manifest itself.
func (m *Manifest) Append(name string) (err error) {
	lock := flock.New(m.Path, flock.SetFlag(os.O_CREATE|os.O_RDONLY), flock.SetPermissions(0644))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock manifest %s: %w", m.Path, err)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("failed to unlock manifest %s: %w", m.Path, uerr)
		}
	}()

	f, err := os.OpenFile(m.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open manifest %s: %w", m.Path, err)
	}

	if _, err := f.WriteString(name + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append %s to manifest %s: %w", name, m.Path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close manifest %s: %w", m.Path, err)
	}
	return nil
}

// Read returns the repository names in the manifest, sorted. Blank lines and
// comment lines are skipped; surrounding whitespace is trimmed.
func (m *Manifest) Read() ([]string, error) {
	f, err := os.Open(m.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", m.Path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", m.Path, err)
	}

	sort.Strings(names)
	return names, nil
}

// Qualified prefixes every name with "org/"
func Qualified(org string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = org + "/" + name
	}
	return out
}
