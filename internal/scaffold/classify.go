package scaffold

import (
	"path"
	"strings"
)

// Kind says how a template file is written to the target.
type Kind int

const (
	// PlainCopy copies the file byte for byte.
	PlainCopy Kind = iota
	// TemplatedText substitutes the placeholder and drops the marker from the name.
	TemplatedText
	// Renamed copies the file under its alias.
	Renamed
)

func (k Kind) String() string {
	switch k {
	case TemplatedText:
		return "templated"
	case Renamed:
		return "renamed"
	default:
		return "copy"
	}
}

const (
	// Placeholder is replaced with the package name in templated files.
	Placeholder = "{{name}}"
	// templateMarker flags a file for placeholder substitution.
	templateMarker = ".template"
)

// aliases maps names a template cannot ship literally to the name written.
var aliases = map[string]string{
	"_gitignore":     ".gitignore",
	"_prettierrc":    ".prettierrc",
	"_gitattributes": ".gitattributes",
	"_env_example":   ".env.example",
}

// FileEntry is one file of a template and where it lands in the target.
type FileEntry struct {
	RelPath string // slash-separated path inside the template
	Kind    Kind
	Target  string // slash-separated path inside the target directory
}

// Classify decides how relPath is written. A templated file whose stripped
// name is an alias is written under the alias as well.
func Classify(relPath string) FileEntry {
	dir, base := path.Split(relPath)
	entry := FileEntry{RelPath: relPath, Kind: PlainCopy, Target: relPath}

	if strings.Contains(base, templateMarker) {
		base = strings.Replace(base, templateMarker, "", 1)
		entry.Kind = TemplatedText
		entry.Target = dir + base
	}
	if alias, ok := aliases[base]; ok {
		if entry.Kind == PlainCopy {
			entry.Kind = Renamed
		}
		entry.Target = dir + alias
	}
	return entry
}
