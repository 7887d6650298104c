// Package naming normalizes user-supplied directory names and derives valid
// npm package names from them.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/expresskit/create-express/internal/branding"
)

var (
	packageNamePattern = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	leadingDotOrScore  = regexp.MustCompile(`^[._]`)
	disallowedRun      = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// TargetSpec is a target directory as typed by the user and after normalization.
type TargetSpec struct {
	Raw  string
	Path string
}

// NewTargetSpec normalizes raw into a TargetSpec.
func NewTargetSpec(raw string) TargetSpec {
	return TargetSpec{Raw: raw, Path: NormalizeDirectory(raw)}
}

// Valid reports whether the normalized path is usable.
func (t TargetSpec) Valid() bool {
	return t.Path != ""
}

// NormalizeDirectory trims leading whitespace and strips the trailing run of
// slashes and whitespace, so "app / " and "app" name the same directory.
func NormalizeDirectory(raw string) string {
	trimmed := strings.TrimRightFunc(raw, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
	return strings.TrimLeftFunc(trimmed, unicode.IsSpace)
}

// IsValidPackageName reports whether name is a valid package.json name,
// optionally scoped (@scope/name).
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// ToPackageName derives a package name from an arbitrary directory name.
// Input that reduces to nothing falls back to the default project name.
func ToPackageName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = leadingDotOrScore.ReplaceAllString(name, "")
	name = disallowedRun.ReplaceAllString(name, "-")
	if name == "" {
		return branding.DefaultProject()
	}
	return name
}
