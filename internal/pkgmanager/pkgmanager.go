// Package pkgmanager works out which package manager launched the CLI and
// which commands the user should run next.
package pkgmanager

import (
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// DefaultManager is assumed when the invoking manager is unknown.
const DefaultManager = "npm"

// Info identifies the invoking package manager.
type Info struct {
	Name    string
	Version string
}

// Detect parses a user agent of the form "name/version node/... os arch".
// An empty user agent yields nil. Malformed tokens produce partial results.
func Detect(userAgent string) *Info {
	if userAgent == "" {
		return nil
	}
	token, _, _ := strings.Cut(userAgent, " ")
	name, version, _ := strings.Cut(token, "/")
	// Only the first two segments matter, as in "name/version/extra".
	version, _, _ = strings.Cut(version, "/")
	return &Info{Name: name, Version: version}
}

// SemVer parses Version leniently. ok is false when it is not a version.
func (i *Info) SemVer() (v *semver.Version, ok bool) {
	if i == nil || i.Version == "" {
		return nil, false
	}
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, false
	}
	return v, true
}

// String renders "name vX.Y.Z", or just the name without a usable version.
func (i *Info) String() string {
	if i == nil {
		return DefaultManager
	}
	if v, ok := i.SemVer(); ok {
		return i.Name + " v" + v.String()
	}
	return i.Name
}

// ManagerName returns the manager to recommend, defaulting to npm.
func ManagerName(info *Info) string {
	if info == nil || info.Name == "" {
		return DefaultManager
	}
	return info.Name
}

// Instructions returns the commands to run after scaffolding. The cd step is
// included only when the project is not in the working directory.
func Instructions(info *Info, relDir string, changedDir bool) []string {
	var lines []string
	if changedDir {
		if strings.ContainsFunc(relDir, unicode.IsSpace) {
			relDir = `"` + relDir + `"`
		}
		lines = append(lines, "cd "+relDir)
	}

	switch pm := ManagerName(info); pm {
	case "yarn":
		lines = append(lines, "yarn", "yarn dev")
	default:
		lines = append(lines, pm+" install", pm+" run dev")
	}
	return lines
}

// DoneMessage formats the closing block printed after a successful run.
func DoneMessage(lines []string) string {
	var b strings.Builder
	b.WriteString("Done. Now run:\n")
	for _, l := range lines {
		b.WriteString("\n  ")
		b.WriteString(l)
	}
	return b.String()
}
