package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/expresskit/create-express/internal/manifest"
)

// ErrInvalidManifestName is returned when the rewritten package.json name
// does not satisfy the package naming rules.
var ErrInvalidManifestName = errors.New("invalid manifest name")

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// Result holds the outcome of a materialization.
type Result struct {
	Files    []string // target paths in write order
	Warnings []string
}

// Enumerate lists every file of the template except the root manifest,
// sorted by path.
func Enumerate(fsys fs.FS) ([]FileEntry, error) {
	var entries []FileEntry
	err := doublestar.GlobWalk(fsys, "**", func(p string, d fs.DirEntry) error {
		if d.IsDir() || p == manifest.FileName {
			return nil
		}
		entries = append(entries, Classify(p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template files: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })
	return entries, nil
}

// Materialize writes the template in fsys into dst and rewrites its manifest
// with packageName. It is not transactional: on error, files written so far
// stay in dst.
func Materialize(fsys fs.FS, dst billy.Filesystem, packageName string) (*Result, error) {
	entries, err := Enumerate(fsys)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, entry := range entries {
		if err := writeEntry(fsys, dst, entry, packageName); err != nil {
			return result, err
		}
		result.Files = append(result.Files, entry.Target)
	}

	warnings, err := writeManifest(fsys, dst, packageName)
	if err != nil {
		return result, err
	}
	result.Files = append(result.Files, manifest.FileName)
	result.Warnings = warnings

	return result, nil
}

func writeEntry(fsys fs.FS, dst billy.Filesystem, entry FileEntry, packageName string) error {
	if dir := path.Dir(entry.Target); dir != "." {
		if err := dst.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if entry.Kind == TemplatedText {
		content, err := fs.ReadFile(fsys, entry.RelPath)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", entry.RelPath, err)
		}
		replaced := strings.ReplaceAll(string(content), Placeholder, packageName)
		if err := util.WriteFile(dst, entry.Target, []byte(replaced), fileMode); err != nil {
			return fmt.Errorf("writing %s: %w", entry.Target, err)
		}
		return nil
	}

	return copyFile(fsys, dst, entry.RelPath, entry.Target)
}

// copyFile copies src from fsys to target in dst byte for byte.
func copyFile(fsys fs.FS, dst billy.Filesystem, src, target string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", src, err)
	}
	defer in.Close()

	out, err := dst.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", target, err)
	}
	return nil
}

// writeManifest substitutes the placeholder in the template manifest, forces
// its name to packageName and writes it. Schema issues other than the name
// come back as warnings.
func writeManifest(fsys fs.FS, dst billy.Filesystem, packageName string) ([]string, error) {
	raw, err := fs.ReadFile(fsys, manifest.FileName)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", manifest.FileName, err)
	}

	doc, err := manifest.Parse([]byte(strings.ReplaceAll(string(raw), Placeholder, packageName)))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", manifest.FileName, err)
	}
	if err := doc.SetName(packageName); err != nil {
		return nil, err
	}

	out, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", manifest.FileName, err)
	}

	validation, err := manifest.Validate(out)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifest.FileName, err)
	}
	if validation.HasIssueAt("/name") {
		return nil, fmt.Errorf("%w %q", ErrInvalidManifestName, packageName)
	}
	var warnings []string
	for _, issue := range validation.Issues {
		warnings = append(warnings, issue.String())
	}

	if err := util.WriteFile(dst, manifest.FileName, out, fileMode); err != nil {
		return nil, fmt.Errorf("writing %s: %w", manifest.FileName, err)
	}
	return warnings, nil
}
