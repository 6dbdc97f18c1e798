// Package buildinfo holds version data stamped in at link time.
package buildinfo

import "strings"

// Name is the program name.
const Name = "blur"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Short returns a compact build identifier for UI and logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title joins the non-empty parts of "name version commit".
func Title(name, version, commit string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{name, version, commit} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// WindowTitle is the title of the desktop window.
func WindowTitle() string {
	return Title(Name, Version, Commit)
}
