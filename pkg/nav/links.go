package nav

// BuildLinks produces the ordered entries of the menu selected by c.
// Only the Home entry of the Primary home view is marked active here;
// Secondary activity is left to ResolveActive.
func BuildLinks(c Classification) []Entry {
	if c.Variant == Secondary {
		entries := make([]Entry, 0, len(secondaryPages))
		for _, p := range secondaryPages {
			entries = append(entries, newEntry(p, c.BasePrefix+pages[p].file))
		}
		return entries
	}

	entries := make([]Entry, 0, len(primaryPages))
	for _, p := range primaryPages {
		entries = append(entries, newEntry(p, primaryTarget(p, c)))
	}

	if c.IsHome {
		entries[0].Active = true
	}

	return entries
}

func primaryTarget(p Page, c Classification) string {
	info := pages[p]

	// standalone documents other than home are always linked as pages
	if p != PageHome && info.file != "" {
		return c.BasePrefix + info.file
	}

	switch {
	case c.IsHome:
		return "#" + info.anchor
	case p == PageHome:
		return c.BasePrefix + homeDocument
	default:
		return c.BasePrefix + homeDocument + "#" + info.anchor
	}
}
