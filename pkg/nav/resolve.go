package nav

import "strings"

// ResolveActive marks at most one entry active for the current location.
// The first matching rule wins:
//  1. a Secondary page inside the section highlights the Articles entry;
//  2. a Secondary page highlights the entry whose target file equals its own;
//  3. Primary entries are returned as built.
//
// Entries are modified in place and returned for convenience.
func ResolveActive(location string, c Classification, entries []Entry) []Entry {
	if c.Variant != Secondary {
		return entries
	}

	if strings.Contains(location, SectionMarker) {
		markFirst(entries, pages[PageArticles].file)
		return entries
	}

	markFirst(entries, fileName(location))

	return entries
}

func markFirst(entries []Entry, name string) {
	if name == "" {
		return
	}
	for i := range entries {
		if fileName(entries[i].Target) == name {
			entries[i].Active = true
			return
		}
	}
}

// fileName returns the part of p after the last slash.
func fileName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

// Active returns the index of the active entry or -1 when none is.
func Active(entries []Entry) int {
	for i := range entries {
		if entries[i].Active {
			return i
		}
	}
	return -1
}
