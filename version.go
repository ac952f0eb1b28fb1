// Package inkwell is a rich-text editing panel for Bubble Tea programs.
//
// The engine lives in richtext, the toolbar and editing surface in panel,
// and the horizontal layout container in pane.
package inkwell

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version prefixed with `v`, matching git release tags.
func VersionTag() string {
	return "v" + Version()
}

// Describe returns the program banner printed by `inkwell -version`.
func Describe() string {
	return "inkwell " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
