// Package conflict decides what to do with a target directory that already
// has content, and clears it when asked to.
package conflict

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/expresskit/create-express/internal/prompt"
)

// vcsDir is the only entry that never counts as content and is never purged.
const vcsDir = ".git"

// Disposition is the decision taken for a non-empty target.
type Disposition int

const (
	// Ignore keeps the existing files and scaffolds on top of them.
	Ignore Disposition = iota
	// Abort stops the run.
	Abort
	// Purge removes the existing files (except .git) before scaffolding.
	Purge
)

func (d Disposition) String() string {
	switch d {
	case Abort:
		return "abort"
	case Purge:
		return "purge"
	default:
		return "ignore"
	}
}

// options is the menu shown for a non-empty target, in display order.
var options = []struct {
	label       string
	disposition Disposition
}{
	{"Cancel operation", Abort},
	{"Remove existing files and continue", Purge},
	{"Ignore files and continue", Ignore},
}

// IsEmpty reports whether dir has no entries, or only a .git directory.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	return len(entries) == 0 || (len(entries) == 1 && entries[0].Name() == vcsDir), nil
}

// NeedsResolution reports whether dir exists and has content.
func NeedsResolution(dir string) (bool, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", dir, err)
	}
	empty, err := IsEmpty(dir)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Resolve decides what to do with dir; display is how the user typed it. A
// missing or empty directory needs no decision and yields Ignore. With force
// set the answer is Purge and p is never consulted.
func Resolve(dir, display string, force bool, p prompt.Prompter) (prompt.Result[Disposition], error) {
	needed, err := NeedsResolution(dir)
	if err != nil {
		return prompt.Result[Disposition]{}, err
	}
	if !needed {
		return prompt.Answer(Ignore), nil
	}
	if force {
		return prompt.Answer(Purge), nil
	}

	req := prompt.SelectRequest{Message: message(display)}
	for _, o := range options {
		req.Options = append(req.Options, prompt.Option{Label: o.label, Value: o.disposition.String()})
	}

	res, err := p.Select(req)
	if err != nil {
		return prompt.Result[Disposition]{}, err
	}
	if res.Cancelled {
		return prompt.Cancel[Disposition](), nil
	}
	for _, o := range options {
		if o.disposition.String() == res.Value {
			return prompt.Answer(o.disposition), nil
		}
	}
	return prompt.Result[Disposition]{}, fmt.Errorf("unexpected answer %q", res.Value)
}

func message(display string) string {
	subject := fmt.Sprintf(`Target directory "%s"`, display)
	if display == "." {
		subject = "Current directory"
	}
	return subject + " is not empty. Please choose how to proceed:"
}

// EmptyDir removes everything under dir except the .git directory. A missing
// dir is not an error.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() == vcsDir {
			continue
		}
		// RemoveAll already treats a vanished path as success.
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}
